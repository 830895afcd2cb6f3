package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/scrapwale/scrapwale-be/internal/client"
)

func main() {
	ratesCmd := flag.NewFlagSet("rates", flag.ExitOnError)

	setRateCmd := flag.NewFlagSet("set-rate", flag.ExitOnError)
	rateID := setRateCmd.Int("id", 0, "Rate ID to update")
	rateValue := setRateCmd.Int("rate", -1, "New rate in rupees per kg")
	rateTrend := setRateCmd.String("trend", "stable", "Trend: up, down or stable")

	pickupsCmd := flag.NewFlagSet("pickups", flag.ExitOnError)

	setStatusCmd := flag.NewFlagSet("set-status", flag.ExitOnError)
	pickupID := setStatusCmd.Int("id", 0, "Pickup ID to update")
	pickupStatus := setStatusCmd.String("status", "", "Status: pending, confirmed, completed or cancelled")

	eventsCmd := flag.NewFlagSet("events", flag.ExitOnError)
	eventLimit := eventsCmd.Int("limit", 20, "Number of recent events to show")

	if len(os.Args) < 2 {
		fmt.Println("expected 'rates', 'set-rate', 'pickups', 'set-status' or 'events' subcommand")
		os.Exit(1)
	}

	api := newClient()

	switch os.Args[1] {
	case "rates":
		ratesCmd.Parse(os.Args[2:])
		listRates(api)
	case "set-rate":
		setRateCmd.Parse(os.Args[2:])
		if *rateID == 0 || *rateValue < 0 {
			fmt.Println("id and a non-negative rate are required")
			setRateCmd.PrintDefaults()
			os.Exit(1)
		}
		login(api)
		setRate(api, *rateID, *rateValue, *rateTrend)
	case "pickups":
		pickupsCmd.Parse(os.Args[2:])
		login(api)
		listPickups(api)
	case "set-status":
		setStatusCmd.Parse(os.Args[2:])
		if *pickupID == 0 || *pickupStatus == "" {
			fmt.Println("id and status are required")
			setStatusCmd.PrintDefaults()
			os.Exit(1)
		}
		login(api)
		setStatus(api, *pickupID, *pickupStatus)
	case "events":
		eventsCmd.Parse(os.Args[2:])
		login(api)
		listEvents(api, *eventLimit)
	default:
		fmt.Println("expected 'rates', 'set-rate', 'pickups', 'set-status' or 'events' subcommand")
		os.Exit(1)
	}
}

func newClient() *client.Client {
	baseURL := os.Getenv("SCRAPWALE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	api, err := client.New(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create client: %v\n", err)
		os.Exit(1)
	}
	return api
}

func login(api *client.Client) {
	username := os.Getenv("SCRAPWALE_USER")
	password := os.Getenv("SCRAPWALE_PASS")
	if username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "SCRAPWALE_USER and SCRAPWALE_PASS must be set for admin commands")
		os.Exit(1)
	}

	if err := api.Login(username, password); err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}
}

func listRates(api *client.Client) {
	rates, err := api.Rates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch rates: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMATERIAL\tRATE/KG\tTREND\tUPDATED")
	for _, r := range rates {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", r.ID, r.MaterialName, r.Rate, r.Trend, r.LastUpdated.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func setRate(api *client.Client, id, rate int, trend string) {
	updated, err := api.UpdateRate(id, rate, trend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to update rate: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s is now %d/kg (%s)\n", updated.MaterialName, updated.Rate, updated.Trend)
}

func listPickups(api *client.Client) {
	pickups, err := api.Pickups()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch pickups: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tDATE\tSTATUS\tMATERIALS")
	for _, p := range pickups {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%v\n", p.ID, p.Name, p.Phone, p.Date, p.Status, p.Materials)
	}
	w.Flush()
}

func listEvents(api *client.Client, limit int) {
	events, err := api.Events(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch events: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tMESSAGE")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Type, e.Message)
	}
	w.Flush()
}

func setStatus(api *client.Client, id int, status string) {
	updated, err := api.UpdatePickupStatus(id, status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to update pickup: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Pickup #%d is now %s\n", updated.ID, updated.Status)
}
