package catalog

import "github.com/julianstephens/levos/internal/models"

func defaultBlocks() map[string]models.BlockDefinition {
	return map[string]models.BlockDefinition{
		"OP_1":      {ID: "OP_1", Name: "1 operation", Emoji: "🏥", Category: models.CategoryOperation, Color: "#EF4444", Duration: 180, MinDur: 120, MaxDur: 240},
		"OP_2":      {ID: "OP_2", Name: "2 operations", Emoji: "🏥🏥", Category: models.CategoryOperation, Color: "#DC2626", Duration: 300, MinDur: 240, MaxDur: 420},
		"OP_3":      {ID: "OP_3", Name: "3 operations", Emoji: "🏥🏥🏥", Category: models.CategoryOperation, Color: "#B91C1C", Duration: 420, MinDur: 360, MaxDur: 540},
		"BUFFER":    {ID: "BUFFER", Name: "Buffer", Emoji: "⏳", Category: models.CategoryBuffer, Color: "#6B7280", Duration: 30, MinDur: 15, MaxDur: 60},
		"ROAD":      {ID: "ROAD", Name: "Commute", Emoji: "🚶", Category: models.CategoryBuffer, Color: "#4B5563", Duration: 25, MinDur: 20, MaxDur: 40},
		"FAM":       {ID: "FAM", Name: "Family 50 min", Emoji: "👨‍👩‍👧", Category: models.CategorySacred, Color: "#A855F7", Duration: 50, MinDur: 30, MaxDur: 120},
		"WALK":      {ID: "WALK", Name: "Family walk", Emoji: "🚶‍♂️", Category: models.CategorySacred, Color: "#9333EA", Duration: 90, MinDur: 60, MaxDur: 120},
		"POLECHAT":  {ID: "POLECHAT", Name: "Polechat", Emoji: "💼", Category: models.CategoryPolechat, Color: "#3B82F6", Duration: 120, MinDur: 30, MaxDur: 300},
		"CALL_P":    {ID: "CALL_P", Name: "Polechat call", Emoji: "📞💼", Category: models.CategoryPolechat, Color: "#2563EB", Duration: 60, MinDur: 30, MaxDur: 90},
		"SOMALAB":   {ID: "SOMALAB", Name: "Somalab", Emoji: "⚡", Category: models.CategorySomalab, Color: "#F97316", Duration: 90, MinDur: 30, MaxDur: 180},
		"CALL_S":    {ID: "CALL_S", Name: "Somalab call", Emoji: "📞⚡", Category: models.CategorySomalab, Color: "#EA580C", Duration: 60, MinDur: 30, MaxDur: 90},
		"LAB":       {ID: "LAB", Name: "Laboratory", Emoji: "🔬", Category: models.CategoryLab, Color: "#8B5CF6", Duration: 120, MinDur: 60, MaxDur: 240},
		"SPORT":     {ID: "SPORT", Name: "Sport", Emoji: "🏋️", Category: models.CategoryCare, Color: "#22C55E", Duration: 90, MinDur: 60, MaxDur: 150},
		"SPORT_SPA": {ID: "SPORT_SPA", Name: "Sport + spa", Emoji: "🏋️🧖", Category: models.CategoryCare, Color: "#16A34A", Duration: 150, MinDur: 120, MaxDur: 180},
		"NAP":       {ID: "NAP", Name: "Power nap", Emoji: "💤", Category: models.CategoryCare, Color: "#14B8A6", Duration: 30, MinDur: 20, MaxDur: 45},
		"SLEEP":     {ID: "SLEEP", Name: "Sleep", Emoji: "😴", Category: models.CategoryNight, Color: "#6366F1", Duration: 480, MinDur: 360, MaxDur: 540},
		"HYPER":     {ID: "HYPER", Name: "Hyperfocus", Emoji: "🔥", Category: models.CategoryFree, Color: "#F59E0B", Duration: 180, MinDur: 120, MaxDur: 360},
		"FREE":      {ID: "FREE", Name: "Free time", Emoji: "🎨", Category: models.CategoryFree, Color: "#EAB308", Duration: 60, MinDur: 30, MaxDur: 180},
	}
}

func defaultScenarios() map[string]models.Scenario {
	return map[string]models.Scenario{
		"1": {Key: "1", Name: "1st", Desc: "by 8:30", WakeUp: 7.5, OpStart: 8.5, HasOpStart: true, ArriveBy: "8:30-8:40"},
		"2": {Key: "2", Name: "2nd", Desc: "by 10:00", WakeUp: 8.5, OpStart: 10, HasOpStart: true, HomeWindow: &models.HomeWindow{Start: 9, Duration: 30}, ArriveBy: "10:00"},
		"3": {Key: "3", Name: "3rd", Desc: "by 12:00", WakeUp: 10, OpStart: 12, HasOpStart: true, HomeWindow: &models.HomeWindow{Start: 10.5, Duration: 60}, ArriveBy: "12:00", Note: "Call to confirm! Might be 15:00"},
		"4": {Key: "4", Name: "4+", Desc: "by 15:00", WakeUp: 11, OpStart: 15, HasOpStart: true, HomeWindow: &models.HomeWindow{Start: 11.5, Duration: 180}, CanGym: true, ArriveBy: "15:00"},
		"w": {Key: "w", Name: "Weekend", Desc: "weekend", WakeUp: 11, IsWeekend: true},
	}
}

func defaultContexts() map[string]models.WorkContext {
	return map[string]models.WorkContext{
		"POLECHAT": {Key: "POLECHAT", Name: "Polechat", Emoji: "💼", Color: "#3B82F6", BlockID: "POLECHAT"},
		"SOMALAB":  {Key: "SOMALAB", Name: "Somalab", Emoji: "⚡", Color: "#F97316", BlockID: "SOMALAB"},
		"LAB":      {Key: "LAB", Name: "Laboratory", Emoji: "🔬", Color: "#8B5CF6", BlockID: "LAB"},
	}
}
