package report

import "github.com/abhisek/tizhi/internal/bank"

var descriptions = [bank.CategoryCount]string{
	bank.Balanced:         "整体状态平衡，精神好、睡眠也不错。保持规律作息，是理想体质。",
	bank.QiDeficiency:     "容易觉得累，说话没力气，天气变化时也容易感冒。注意休息和睡眠。",
	bank.YangDeficiency:   "怕冷、手脚常冰凉，容易精神不振。多晒太阳、吃热食让你更有活力。",
	bank.YinDeficiency:    "常觉得热、容易口干、睡不踏实。多喝水、别太晚睡，会更舒服。",
	bank.PhlegmDampness:   "容易困、身体沉重。饮食清淡、少油腻能让身体更轻盈。",
	bank.DampHeat:         "脸上易出油或长痘，有时觉得闷热。清淡饮食、多喝水最适合。",
	bank.BloodStasis:      "脸色略暗或易酸痛。适度活动、伸展能让气血更顺畅。",
	bank.QiStagnation:     "容易紧张焦虑，睡眠也易受影响。多放松、多交流会更舒畅。",
	bank.InheritedSpecial: "体质较敏感，易过敏或对环境变化反应大。注意防护、保持作息。",
}

// Description returns a short plain-language blurb for category c.
func Description(c bank.Category) string {
	if !c.Valid() {
		return ""
	}
	return descriptions[c]
}
