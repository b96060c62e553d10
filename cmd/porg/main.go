package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gravadigital/poorganiser-api/internal/config"
	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/logger"
	"github.com/gravadigital/poorganiser-api/internal/services"
	"github.com/gravadigital/poorganiser-api/internal/storage/backends"
)

const usage = `Usage: porg <command> [flags]

Commands:
  register      -username <name>
  unregister    -username <name> [-delete-events]
  create-event  -name <name> -owner <username> [-location <loc>] [-time <RFC3339>]
  list-events   [-current]
  attend        -username <name> -event <id> [-status <status>]
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	logger.Initialize(cfg.Log.Level)
	log := logger.Get()

	store, err := backends.Open(cfg)
	if err != nil {
		log.Error("Failed to open storage backend", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	org := services.New(store)

	if err := run(org, os.Args[1], os.Args[2:]); err != nil {
		log.Error("Command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(org *services.Organiser, command string, args []string) error {
	switch command {
	case "register":
		return runRegister(org, args)
	case "unregister":
		return runUnregister(org, args)
	case "create-event":
		return runCreateEvent(org, args)
	case "list-events":
		return runListEvents(org, args)
	case "attend":
		return runAttend(org, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runRegister(org *services.Organiser, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "Username to register")
	fs.Parse(args)

	u, err := org.RegisterUser(*username)
	if err != nil {
		return err
	}

	fmt.Printf("Registered user %q with id %d\n", u.Username, u.ID)
	return nil
}

func runUnregister(org *services.Organiser, args []string) error {
	fs := flag.NewFlagSet("unregister", flag.ExitOnError)
	username := fs.String("username", "", "Username to unregister")
	deleteEvents := fs.Bool("delete-events", false, "Also delete events the user organises")
	fs.Parse(args)

	if err := org.UnregisterUser(record.ByName(*username), *deleteEvents); err != nil {
		return err
	}

	fmt.Printf("Unregistered user %q\n", *username)
	return nil
}

func runCreateEvent(org *services.Organiser, args []string) error {
	fs := flag.NewFlagSet("create-event", flag.ExitOnError)
	name := fs.String("name", "", "Event name")
	owner := fs.String("owner", "", "Username of the organiser")
	location := fs.String("location", "", "Event location")
	when := fs.String("time", "", "Event time in RFC3339 format")
	fs.Parse(args)

	var at *time.Time
	if *when != "" {
		t, err := time.Parse(time.RFC3339, *when)
		if err != nil {
			return fmt.Errorf("invalid -time value %q: %w", *when, err)
		}
		at = &t
	}

	evt, err := org.CreateEvent(*name, record.ByName(*owner), *location, at)
	if err != nil {
		return err
	}

	fmt.Printf("Created event %q with id %d\n", evt.Name, evt.ID)
	return nil
}

func runListEvents(org *services.Organiser, args []string) error {
	fs := flag.NewFlagSet("list-events", flag.ExitOnError)
	current := fs.Bool("current", false, "Only list events scheduled today or later")
	fs.Parse(args)

	var events []*event.Event
	var err error
	if *current {
		events, err = org.GetCurrentEvents()
	} else {
		events, err = org.GetAllEvents()
	}
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No events")
		return nil
	}

	for _, evt := range events {
		line := fmt.Sprintf("%d\t%s", evt.ID, evt.Name)
		if evt.Location != "" {
			line += "\t@ " + evt.Location
		}
		if evt.Time != nil {
			line += "\t" + evt.Time.Format(time.RFC3339)
		}
		fmt.Println(line)
	}
	return nil
}

func runAttend(org *services.Organiser, args []string) error {
	fs := flag.NewFlagSet("attend", flag.ExitOnError)
	username := fs.String("username", "", "Username of the attendee")
	eventID := fs.Int("event", 0, "Event id")
	status := fs.String("status", "", "Going status (defaults to invited)")
	fs.Parse(args)

	att, err := org.CreateAttendance(record.ByName(*username), record.ByID(*eventID), *status, nil)
	if err != nil {
		return err
	}

	fmt.Printf("User %q attending event %d (status %s)\n", *username, att.EventID, att.GoingStatus)
	return nil
}
