package bank

// catalog is the declared question list in catalog order. The damp-heat
// category carries one female-only and one male-only item that substitute
// for each other, so every respondent answers 66 questions.
var catalog = []Question{
	// 平和质
	{ID: "bal-1", Category: Balanced, Text: "您精力充沛吗？"},
	{ID: "bal-2", Category: Balanced, Text: "您容易疲乏吗？"},
	{ID: "bal-3", Category: Balanced, Text: "您说话声音无力吗？"},
	{ID: "bal-4", Category: Balanced, Text: "您感到闷闷不乐吗？"},
	{ID: "bal-5", Category: Balanced, Text: "您比一般人耐受不了寒冷（冬天寒冷、夏天空调、电扇）吗？"},
	{ID: "bal-6", Category: Balanced, Text: "您能适应外界自然和社会环境的变化吗？"},
	{ID: "bal-7", Category: Balanced, Text: "您容易失眠吗？"},
	{ID: "bal-8", Category: Balanced, Text: "您容易忘事（健忘）吗？"},

	// 气虚质
	{ID: "qd-1", Category: QiDeficiency, Text: "您容易疲乏吗？"},
	{ID: "qd-2", Category: QiDeficiency, Text: "您容易气短（呼吸短促、接不上气）吗？"},
	{ID: "qd-3", Category: QiDeficiency, Text: "您容易心慌吗？"},
	{ID: "qd-4", Category: QiDeficiency, Text: "您容易头晕或站起时眩晕吗？"},
	{ID: "qd-5", Category: QiDeficiency, Text: "您比别人容易患感冒吗？"},
	{ID: "qd-6", Category: QiDeficiency, Text: "您喜欢安静、懒得说话吗？"},
	{ID: "qd-7", Category: QiDeficiency, Text: "您说话声音无力吗？"},
	{ID: "qd-8", Category: QiDeficiency, Text: "您活动量稍大就容易出虚汗吗？"},

	// 阳虚质
	{ID: "yad-1", Category: YangDeficiency, Text: "您手脚发凉吗？"},
	{ID: "yad-2", Category: YangDeficiency, Text: "您胃脘部、背部或腰膝部怕冷吗？"},
	{ID: "yad-3", Category: YangDeficiency, Text: "您感到怕冷，衣服比别人穿得多吗？"},
	{ID: "yad-4", Category: YangDeficiency, Text: "您比一般人不耐寒冷（冬季寒冷、夏天空调/电扇）吗？"},
	{ID: "yad-5", Category: YangDeficiency, Text: "您比别人容易患感冒吗？"},
	{ID: "yad-6", Category: YangDeficiency, Text: "您吃（喝）凉的东西会感到不舒服或害怕吃（喝）凉东西吗？"},
	{ID: "yad-7", Category: YangDeficiency, Text: "您受凉或吃（喝）凉的东西后，容易腹泻（拉肚子）吗？"},

	// 阴虚质
	{ID: "yid-1", Category: YinDeficiency, Text: "您感到手脚心发热吗？"},
	{ID: "yid-2", Category: YinDeficiency, Text: "您感觉身体、脸上发热吗？"},
	{ID: "yid-3", Category: YinDeficiency, Text: "您皮肤或口唇干吗？"},
	{ID: "yid-4", Category: YinDeficiency, Text: "您口唇的颜色比一般人红吗？"},
	{ID: "yid-5", Category: YinDeficiency, Text: "您容易便秘或大便干燥吗？"},
	{ID: "yid-6", Category: YinDeficiency, Text: "您面部两颧潮红或偏红吗？"},
	{ID: "yid-7", Category: YinDeficiency, Text: "您感到眼睛干涩吗？"},
	{ID: "yid-8", Category: YinDeficiency, Text: "您活动量稍大就容易出虚汗吗？"},

	// 痰湿质
	{ID: "pd-1", Category: PhlegmDampness, Text: "您感到胸闷或腹部胀满吗？"},
	{ID: "pd-2", Category: PhlegmDampness, Text: "您感到身体沉重不轻松或不爽快吗？"},
	{ID: "pd-3", Category: PhlegmDampness, Text: "您腹部肥满松软吗？"},
	{ID: "pd-4", Category: PhlegmDampness, Text: "您额部油脂分泌多吗？"},
	{ID: "pd-5", Category: PhlegmDampness, Text: "您眼睑比别人肿（轻微隆起）吗？"},
	{ID: "pd-6", Category: PhlegmDampness, Text: "您嘴里有黏腻感吗？"},
	{ID: "pd-7", Category: PhlegmDampness, Text: "您平时痰多，特别是咽喉部总感到有痰堵着吗？"},
	{ID: "pd-8", Category: PhlegmDampness, Text: "您舌苔厚腻或舌苔发厚吗？"},

	// 湿热质
	{ID: "dh-1", Category: DampHeat, Text: "您面部或鼻部有油腻感或油亮发光吗？"},
	{ID: "dh-2", Category: DampHeat, Text: "您容易生痤疮或疮疖吗？"},
	{ID: "dh-3", Category: DampHeat, Text: "您感到口苦或口中有异味吗？"},
	{ID: "dh-4", Category: DampHeat, Text: "您大便黏滞不爽，有解不尽的感觉吗？"},
	{ID: "dh-5", Category: DampHeat, Text: "您小便时尿道发热感、尿色深（浓）吗？"},
	{ID: "dh-6f", Category: DampHeat, Text: "您带下色黄（限女性）吗？", Only: FemaleOnly},
	{ID: "dh-6m", Category: DampHeat, Text: "您的阴囊部位潮湿（限男性）吗？", Only: MaleOnly},

	// 血瘀质
	{ID: "bs-1", Category: BloodStasis, Text: "您的皮肤在不知不觉中会出现青紫瘀斑（皮下出血）吗？"},
	{ID: "bs-2", Category: BloodStasis, Text: "您两颧部有细微红丝吗？"},
	{ID: "bs-3", Category: BloodStasis, Text: "您身体上有哪里疼痛吗？"},
	{ID: "bs-4", Category: BloodStasis, Text: "您面色晦暗或容易出现褐斑吗？"},
	{ID: "bs-5", Category: BloodStasis, Text: "您容易有黑眼圈吗？"},
	{ID: "bs-6", Category: BloodStasis, Text: "您容易忘事（健忘）吗？"},
	{ID: "bs-7", Category: BloodStasis, Text: "您口唇颜色偏暗吗？"},

	// 气郁质
	{ID: "qs-1", Category: QiStagnation, Text: "您感到闷闷不乐吗？"},
	{ID: "qs-2", Category: QiStagnation, Text: "您容易精神紧张、焦虑不安吗？"},
	{ID: "qs-3", Category: QiStagnation, Text: "您多愁善感、感情脆弱吗？"},
	{ID: "qs-4", Category: QiStagnation, Text: "您容易受到惊吓吗？"},
	{ID: "qs-5", Category: QiStagnation, Text: "您肋胁部或乳房胀痛吗？"},
	{ID: "qs-6", Category: QiStagnation, Text: "您无缘无故叹气吗？"},
	{ID: "qs-7", Category: QiStagnation, Text: "您咽喉部有异物感，且吐之不出、咽之不下吗？"},

	// 特禀质
	{ID: "is-1", Category: InheritedSpecial, Text: "您没有感冒时也会打喷嚏吗？"},
	{ID: "is-2", Category: InheritedSpecial, Text: "您没有感冒时也会鼻塞、流鼻涕吗？"},
	{ID: "is-3", Category: InheritedSpecial, Text: "您因季节变化、温度变化或异味而咳嗽或喘息吗？"},
	{ID: "is-4", Category: InheritedSpecial, Text: "您容易过敏（对药物、食物、气味、花粉或在季节/气候变化时）吗？"},
	{ID: "is-5", Category: InheritedSpecial, Text: "您的皮肤容易起荨麻疹（风团、风疹块、风疙瘩）吗？"},
	{ID: "is-6", Category: InheritedSpecial, Text: "您因皮肤敏感出现紫癜（紫红色淤点、瘀斑）吗？"},
	{ID: "is-7", Category: InheritedSpecial, Text: "您的皮肤一抓就红，并出现抓痕吗？"},
}
