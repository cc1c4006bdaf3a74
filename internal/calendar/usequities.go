package calendar

import "time"

// USEquities returns the market configuration for US equities: NYSE/Nasdaq
// holiday and early-close conventions in America/New_York. Regular session
// 09:30-16:00 (13:00 on early-close days), extended session 04:00-20:00
// (17:00 on early-close days).
func USEquities() MarketConfig {
	return MarketConfig{
		Zone:  "America/New_York",
		Rules: NewTableRules(usEquitiesClosedDays, usEquitiesEarlyCloseDays),
		Sessions: SessionConfig{
			Regular: SessionHours{
				Open:       mustTimeOfDay(9, 30),
				Close:      mustTimeOfDay(16, 0),
				EarlyClose: mustTimeOfDay(13, 0),
			},
			Extended: SessionHours{
				Open:       mustTimeOfDay(4, 0),
				Close:      mustTimeOfDay(20, 0),
				EarlyClose: mustTimeOfDay(17, 0),
			},
		},
	}
}

// Full market closures 2000-2025: weekend-observed fixed holidays (New
// Year's Day, Juneteenth from 2022, Independence Day, Christmas), floating
// holidays (MLK Day, Washington's Birthday, Good Friday, Memorial Day, Labor
// Day, Thanksgiving), and special closures (September 11 attacks 2001,
// Reagan 2004, Ford 2007, Hurricane Sandy 2012, G.H.W. Bush 2018, Carter
// 2025). New Year's Day falling on a Saturday is not observed.
var usEquitiesClosedDays = mustCalendarData(DayTable{
	2000: {time.January: {17}, time.February: {21}, time.April: {21}, time.May: {29}, time.July: {4}, time.September: {4}, time.November: {23}, time.December: {25}},
	2001: {time.January: {1, 15}, time.February: {19}, time.April: {13}, time.May: {28}, time.July: {4}, time.September: {3, 11, 12, 13, 14}, time.November: {22}, time.December: {25}},
	2002: {time.January: {1, 21}, time.February: {18}, time.March: {29}, time.May: {27}, time.July: {4}, time.September: {2}, time.November: {28}, time.December: {25}},
	2003: {time.January: {1, 20}, time.February: {17}, time.April: {18}, time.May: {26}, time.July: {4}, time.September: {1}, time.November: {27}, time.December: {25}},
	2004: {time.January: {1, 19}, time.February: {16}, time.April: {9}, time.May: {31}, time.June: {11}, time.July: {5}, time.September: {6}, time.November: {25}, time.December: {24}},
	2005: {time.January: {17}, time.February: {21}, time.March: {25}, time.May: {30}, time.July: {4}, time.September: {5}, time.November: {24}, time.December: {26}},
	2006: {time.January: {2, 16}, time.February: {20}, time.April: {14}, time.May: {29}, time.July: {4}, time.September: {4}, time.November: {23}, time.December: {25}},
	2007: {time.January: {1, 2, 15}, time.February: {19}, time.April: {6}, time.May: {28}, time.July: {4}, time.September: {3}, time.November: {22}, time.December: {25}},
	2008: {time.January: {1, 21}, time.February: {18}, time.March: {21}, time.May: {26}, time.July: {4}, time.September: {1}, time.November: {27}, time.December: {25}},
	2009: {time.January: {1, 19}, time.February: {16}, time.April: {10}, time.May: {25}, time.July: {3}, time.September: {7}, time.November: {26}, time.December: {25}},
	2010: {time.January: {1, 18}, time.February: {15}, time.April: {2}, time.May: {31}, time.July: {5}, time.September: {6}, time.November: {25}, time.December: {24}},
	2011: {time.January: {17}, time.February: {21}, time.April: {22}, time.May: {30}, time.July: {4}, time.September: {5}, time.November: {24}, time.December: {26}},
	2012: {time.January: {2, 16}, time.February: {20}, time.April: {6}, time.May: {28}, time.July: {4}, time.September: {3}, time.October: {29, 30}, time.November: {22}, time.December: {25}},
	2013: {time.January: {1, 21}, time.February: {18}, time.March: {29}, time.May: {27}, time.July: {4}, time.September: {2}, time.November: {28}, time.December: {25}},
	2014: {time.January: {1, 20}, time.February: {17}, time.April: {18}, time.May: {26}, time.July: {4}, time.September: {1}, time.November: {27}, time.December: {25}},
	2015: {time.January: {1, 19}, time.February: {16}, time.April: {3}, time.May: {25}, time.July: {3}, time.September: {7}, time.November: {26}, time.December: {25}},
	2016: {time.January: {1, 18}, time.February: {15}, time.March: {25}, time.May: {30}, time.July: {4}, time.September: {5}, time.November: {24}, time.December: {26}},
	2017: {time.January: {2, 16}, time.February: {20}, time.April: {14}, time.May: {29}, time.July: {4}, time.September: {4}, time.November: {23}, time.December: {25}},
	2018: {time.January: {1, 15}, time.February: {19}, time.March: {30}, time.May: {28}, time.July: {4}, time.September: {3}, time.November: {22}, time.December: {5, 25}},
	2019: {time.January: {1, 21}, time.February: {18}, time.April: {19}, time.May: {27}, time.July: {4}, time.September: {2}, time.November: {28}, time.December: {25}},
	2020: {time.January: {1, 20}, time.February: {17}, time.April: {10}, time.May: {25}, time.July: {3}, time.September: {7}, time.November: {26}, time.December: {25}},
	2021: {time.January: {1, 18}, time.February: {15}, time.April: {2}, time.May: {31}, time.July: {5}, time.September: {6}, time.November: {25}, time.December: {24}},
	2022: {time.January: {17}, time.February: {21}, time.April: {15}, time.May: {30}, time.June: {20}, time.July: {4}, time.September: {5}, time.November: {24}, time.December: {26}},
	2023: {time.January: {2, 16}, time.February: {20}, time.April: {7}, time.May: {29}, time.June: {19}, time.July: {4}, time.September: {4}, time.November: {23}, time.December: {25}},
	2024: {time.January: {1, 15}, time.February: {19}, time.March: {29}, time.May: {27}, time.June: {19}, time.July: {4}, time.September: {2}, time.November: {28}, time.December: {25}},
	2025: {time.January: {1, 9, 20}, time.February: {17}, time.April: {18}, time.May: {26}, time.June: {19}, time.July: {4}, time.September: {1}, time.November: {27}, time.December: {25}},
})

// Early closes (13:00 regular / 17:00 extended): the day after Thanksgiving,
// July 3 and December 24 when they fall Monday through Thursday, and
// July 5, 2002.
var usEquitiesEarlyCloseDays = mustCalendarData(DayTable{
	2000: {time.July: {3}, time.November: {24}},
	2001: {time.July: {3}, time.November: {23}, time.December: {24}},
	2002: {time.July: {3, 5}, time.November: {29}, time.December: {24}},
	2003: {time.July: {3}, time.November: {28}, time.December: {24}},
	2004: {time.November: {26}},
	2005: {time.November: {25}},
	2006: {time.July: {3}, time.November: {24}},
	2007: {time.July: {3}, time.November: {23}, time.December: {24}},
	2008: {time.July: {3}, time.November: {28}, time.December: {24}},
	2009: {time.November: {27}, time.December: {24}},
	2010: {time.November: {26}},
	2011: {time.November: {25}},
	2012: {time.July: {3}, time.November: {23}, time.December: {24}},
	2013: {time.July: {3}, time.November: {29}, time.December: {24}},
	2014: {time.July: {3}, time.November: {28}, time.December: {24}},
	2015: {time.November: {27}, time.December: {24}},
	2016: {time.November: {25}},
	2017: {time.July: {3}, time.November: {24}},
	2018: {time.July: {3}, time.November: {23}, time.December: {24}},
	2019: {time.July: {3}, time.November: {29}, time.December: {24}},
	2020: {time.November: {27}, time.December: {24}},
	2021: {time.November: {26}},
	2022: {time.November: {25}},
	2023: {time.July: {3}, time.November: {24}},
	2024: {time.July: {3}, time.November: {29}, time.December: {24}},
	2025: {time.July: {3}, time.November: {28}, time.December: {24}},
})
