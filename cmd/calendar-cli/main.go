package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vtsukur/trading-date-time/internal/calendar"
)

const version = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: calendar-cli <command> [options]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  version            Print the CLI version\n")
		fmt.Fprintf(os.Stderr, "  check -date D      Classify a date (trading day, early close)\n")
		fmt.Fprintf(os.Stderr, "  next -date D       First trading day after a date\n")
		fmt.Fprintf(os.Stderr, "  prev -date D       First trading day before a date\n")
		fmt.Fprintf(os.Stderr, "  hours -date D      Session hours (-scope regular|extended)\n")
		fmt.Fprintf(os.Stderr, "\nDates are ISO format (YYYY-MM-DD); today when omitted.\n")
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	cal, err := calendar.NewCalendar(calendar.USEquities())
	if err != nil {
		fatalf("building calendar: %v", err)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("calendar-cli %s\n", version)

	case "check":
		date := parseDate(cal, os.Args[2:], nil)
		fmt.Printf("%s  trading-day=%v  early-close=%v\n",
			date.Format("2006-01-02"), cal.IsTradingDay(date), cal.IsEarlyCloseDay(date))

	case "next":
		date := parseDate(cal, os.Args[2:], nil)
		day, err := cal.NextTradingDay(date)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Println(day.Format("2006-01-02"))

	case "prev":
		date := parseDate(cal, os.Args[2:], nil)
		day, err := cal.PrevTradingDay(date)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Println(day.Format("2006-01-02"))

	case "hours":
		var scopeFlag string
		date := parseDate(cal, os.Args[2:], func(fs *flag.FlagSet) {
			fs.StringVar(&scopeFlag, "scope", "regular", "session scope: regular or extended")
		})
		scope, err := calendar.ParseScope(scopeFlag)
		if err != nil {
			fatalf("%v", err)
		}
		iv, err := cal.TradingHours(date, scope)
		if err != nil {
			fatalf("%v", err)
		}
		if iv == nil {
			fmt.Printf("%s is not a trading day\n", date.Format("2006-01-02"))
			return
		}
		fmt.Printf("%s %s session: %s - %s (%s)\n",
			date.Format("2006-01-02"), scope,
			iv.Start.Format("15:04"), iv.End.Format("15:04"), iv.Duration())

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		flag.Usage()
		os.Exit(1)
	}
}

// parseDate parses command flags and resolves -date, defaulting to today in
// the market timezone.
func parseDate(cal *calendar.Calendar, args []string, extra func(*flag.FlagSet)) time.Time {
	fs := flag.NewFlagSet("calendar-cli", flag.ExitOnError)
	dateFlag := fs.String("date", "", "date in YYYY-MM-DD format")
	if extra != nil {
		extra(fs)
	}
	fs.Parse(args)

	if *dateFlag == "" {
		now := time.Now().In(cal.Zone())
		date, err := cal.Date(now.Format("2006-01-02"))
		if err != nil {
			fatalf("resolving today: %v", err)
		}
		return date
	}

	date, err := cal.Date(*dateFlag)
	if err != nil {
		fatalf("%v", err)
	}
	return date
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
