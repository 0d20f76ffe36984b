package catalog

import "github.com/voltmart/internal/models"

// 首页分类摘要。部分分类暂未收录商品数据，GetCategory 对它们返回未找到。
var categorySummaries = []CategorySummary{
	{ID: "diodes", Name: "Diodes", Image: "/img/diode.jpeg"},
	{ID: "transistors", Name: "Transistors", Image: "/img/transistor.jpeg"},
	{ID: "ics", Name: "ICs", Image: "/img/ic.jpeg"},
	{ID: "microcontrollers", Name: "Microcontrollers", Image: "/img/microcontroller.jpeg"},
	{ID: "sensors", Name: "Sensors", Image: "/img/sensor.jpg"},
	{ID: "capacitors", Name: "Capacitators", Image: "/img/capacitor.jpeg"},
	{ID: "resistors", Name: "Resistor", Image: "/img/resistor.jpeg"},
	{ID: "breadboards", Name: "Breadboard", Image: "/img/breadboard.jpeg"},
	{ID: "others", Name: "Others", Image: "/img/others.jpeg"},
}

var categoryData = map[string]Category{
	"diodes": {
		ID:    "diodes",
		Title: "Diodes",
		Products: []Product{
			{ID: "d1", Name: "PN Junction diode", Price: models.NewMoneyFromInt(10), Image: "/img/diode/pnd.png", Category: "diodes"},
			{ID: "d2", Name: "Zener diode", Price: models.NewMoneyFromInt(10), Image: "/img/diode/z.jpg", Category: "diodes"},
			{ID: "d3", Name: "Gunn diode", Price: models.NewMoneyFromInt(10), Image: "/img/diode/gunn.jpg", Category: "diodes"},
			{ID: "d4", Name: "Photo diode", Price: models.NewMoneyFromInt(10), Image: "/img/diode/photo.jpg", Category: "diodes"},
			{ID: "d5", Name: "Laser diode", Price: models.NewMoneyFromInt(10), Image: "/img/diode/laser.jpg", Category: "diodes"},
			{ID: "d6", Name: "Tunnel diode", Price: models.NewMoneyFromInt(10), Image: "/img/diode/tunnel.jpg", Category: "diodes"},
			{ID: "d7", Name: "Step recovery diode", Price: models.NewMoneyFromInt(10), Image: "/img/diode/sr.jpg", Category: "diodes"},
			{ID: "d8", Name: "LED", Price: models.NewMoneyFromInt(10), Image: "/img/diode/led.jpg", Category: "diodes"},
		},
	},
	"transistors": {
		ID:    "transistors",
		Title: "Transistors",
		Products: []Product{
			{ID: "t1", Name: "BJT", Price: models.NewMoneyFromInt(10), Image: "/img/transistor/bjt.jpg", Category: "transistors"},
			{ID: "t2", Name: "FET", Price: models.NewMoneyFromInt(10), Image: "/img/transistor/fet.jpg", Category: "transistors"},
			{ID: "t3", Name: "IGBT", Price: models.NewMoneyFromInt(10), Image: "/img/transistor/igbt.jpeg", Category: "transistors"},
			{ID: "t4", Name: "Special Transistor", Price: models.NewMoneyFromInt(10), Image: "/img/transistor/st.png", Category: "transistors"},
		},
	},
	"ics": {
		ID:    "ics",
		Title: "ICs",
		Products: []Product{
			{ID: "ic1", Name: "DDPAK", Price: models.NewMoneyFromInt(10), Image: "/img/ic/ddpak.png", Category: "ics"},
			{ID: "ic2", Name: "SOP", Price: models.NewMoneyFromInt(10), Image: "/img/ic/sop.png", Category: "ics"},
			{ID: "ic3", Name: "TSOP", Price: models.NewMoneyFromInt(10), Image: "/img/ic/tsop.png", Category: "ics"},
			{ID: "ic4", Name: "TO252", Price: models.NewMoneyFromInt(10), Image: "/img/ic/to252.png", Category: "ics"},
			{ID: "ic5", Name: "SOT23", Price: models.NewMoneyFromInt(10), Image: "/img/ic/sop23.png", Category: "ics"},
		},
	},
	"microcontrollers": {
		ID:    "microcontrollers",
		Title: "Microcontrollers",
		Products: []Product{
			{ID: "mc1", Name: "Arduino Nano", Price: models.NewMoneyFromInt(12), Image: "/img/mc/an.webp", Category: "microcontrollers"},
			{ID: "mc2", Name: "ESP8266", Price: models.NewMoneyFromInt(8), Image: "/img/mc/8266.jpg", Category: "microcontrollers"},
			{ID: "mc3", Name: "ESP32", Price: models.NewMoneyFromInt(15), Image: "/img/mc/32.webp", Category: "microcontrollers"},
			{ID: "mc4", Name: "Raspberry Pi Pico", Price: models.NewMoneyFromInt(10), Image: "/img/mc/pico.jpg", Category: "microcontrollers"},
		},
	},
	"sensors": {
		ID:    "sensors",
		Title: "Sensors",
		Products: []Product{
			{ID: "s1", Name: "Temperature Sensor", Price: models.NewMoneyFromInt(5), Image: "/img/sensor/ts.webp", Category: "sensors"},
			{ID: "s2", Name: "Humidity Sensor", Price: models.NewMoneyFromInt(6), Image: "/img/sensor/hs.jpg", Category: "sensors"},
			{ID: "s3", Name: "PIR Sensor", Price: models.NewMoneyFromInt(8), Image: "/img/sensor/pir.jpg", Category: "sensors"},
			{ID: "s4", Name: "Ultrasonic Sensor", Price: models.NewMoneyFromInt(7), Image: "/img/sensor/us.jpg", Category: "sensors"},
		},
	},
}
