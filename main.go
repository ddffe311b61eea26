package main

import (
	"flag"
	"fmt"
	"log"

	"chronos/config"
	"chronos/di"
)

type options struct {
	env      string
	session  string
	username string
	password string
	email    string
	register bool
	lat      float64
	lon      float64
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.env, "env", "dev", "environment: dev uses fixture-backed clients, prod talks to the backend")
	flag.StringVar(&opts.session, "session", config.SessionPath(), "path of the session file")
	flag.StringVar(&opts.username, "username", "", "log in with this username before serving")
	flag.StringVar(&opts.password, "password", "", "password for -username")
	flag.StringVar(&opts.email, "email", "", "email for -register")
	flag.BoolVar(&opts.register, "register", false, "register the account first, then log in")
	flag.Float64Var(&opts.lat, "lat", 0, "latitude of the weather location")
	flag.Float64Var(&opts.lon, "lon", 0, "longitude of the weather location")
	flag.Parse()
	return opts
}

func main() {
	opts := parseFlags()

	container := di.NewContainer(opts.env, opts.session)

	if opts.register {
		if err := container.AuthService.Register(opts.username, opts.email, opts.password); err != nil {
			log.Fatalf("Registration failed: %v", err)
		}
	}
	if opts.username != "" {
		if err := container.AuthService.Login(opts.username, opts.password); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
	}

	if opts.lat != 0 || opts.lon != 0 {
		if _, err := container.WeatherService.ResolveCity(opts.lat, opts.lon); err != nil {
			log.Printf("Could not resolve city for %.4f,%.4f: %v", opts.lat, opts.lon, err)
		}
	}

	fmt.Println("refreshing!")
	if err := container.RefresherService.RefreshAll(); err != nil {
		log.Printf("Initial refresh failed: %v", err)
	}

	fmt.Println("starting periodic job!")
	if err := container.RefresherService.Start(config.REFRESH_CRON_SPEC); err != nil {
		log.Fatalf("Failed to start refresher: %v", err)
	}

	fmt.Println("starting server!")
	container.ChronosHttpServer.Start()

	container.RefresherService.Stop()
	container.ReminderService.CancelAll()
	fmt.Println("server exited!")
}
