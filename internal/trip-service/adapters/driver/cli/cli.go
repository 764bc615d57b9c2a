package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"driver-trip/internal/mylogger"
	"driver-trip/internal/trip-service/core/domain/models"
	"driver-trip/internal/trip-service/core/myerrors"
	"driver-trip/internal/trip-service/core/ports/driver"
	"driver-trip/internal/trip-service/core/services"
)

// CLI is the terminal front end. It owns no business rules: every command
// maps onto one service call plus rendering.
type CLI struct {
	session  driver.ISessionService
	trips    driver.ITripService
	progress driver.IProgressService
	location driver.ILocationService
	mylog    mylogger.Logger
	out      io.Writer
}

func New(session driver.ISessionService, trips driver.ITripService, progress driver.IProgressService, location driver.ILocationService, mylog mylogger.Logger, out io.Writer) *CLI {
	return &CLI{
		session:  session,
		trips:    trips,
		progress: progress,
		location: location,
		mylog:    mylog,
		out:      out,
	}
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()
		return fmt.Errorf("missing command")
	}

	c.mylog.Debug("running command", "command", args[0])

	switch args[0] {
	case "login":
		return c.login(ctx, args[1:])
	case "logout":
		return c.logout(ctx)
	case "trips":
		return c.listTrips(ctx, args[1:])
	case "trip":
		return c.tripDetail(ctx, args[1:])
	case "checkin":
		return c.checkIn(ctx, args[1:])
	case "history":
		return c.history(ctx)
	case "profile":
		return c.profile()
	case "location":
		return c.locationCmd(args[1:])
	case "track":
		return c.track(ctx)
	default:
		c.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *CLI) usage() {
	fmt.Fprintln(c.out, "usage: driver-trip <command>")
	fmt.Fprintln(c.out, "  login -user <name> -pass <password>")
	fmt.Fprintln(c.out, "  logout")
	fmt.Fprintln(c.out, "  trips [-filter all|pending|in-progress] [-search text]")
	fmt.Fprintln(c.out, "  trip <id>")
	fmt.Fprintln(c.out, "  checkin <trip id>")
	fmt.Fprintln(c.out, "  history")
	fmt.Fprintln(c.out, "  profile")
	fmt.Fprintln(c.out, "  location [-set <place>] [-grant] [-skip]")
	fmt.Fprintln(c.out, "  track")
}

func (c *CLI) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	user := fs.String("user", "", "username")
	pass := fs.String("pass", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" || *pass == "" {
		return fmt.Errorf("login needs -user and -pass")
	}

	u, err := c.session.Login(ctx, *user, *pass)
	if err != nil {
		if errors.Is(err, myerrors.ErrInvalidCredentials) {
			fmt.Fprintln(c.out, Red+"Invalid credentials"+Reset)
			return err
		}
		return err
	}

	fmt.Fprintf(c.out, "%sSigned in%s as %s\n", Green, Reset, u.FullName())
	if c.location.ShouldPrompt() {
		fmt.Fprintln(c.out, "Location sharing is off. Enable with 'location -grant' or dismiss with 'location -skip'.")
	}
	return nil
}

func (c *CLI) logout(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Signed out")
	return nil
}

func (c *CLI) listTrips(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trips", flag.ContinueOnError)
	filter := fs.String("filter", "all", "status bucket: all, pending or in-progress")
	search := fs.String("search", "", "free text search")
	if err := fs.Parse(args); err != nil {
		return err
	}

	trips, err := c.trips.List(ctx)
	if err != nil {
		// A stale list beats an empty screen; show the cache with a warning.
		cached := c.trips.Cached()
		if len(cached) > 0 {
			fmt.Fprintf(c.out, "%sRefresh failed, showing cached trips%s\n", Yellow, Reset)
			trips = cached
		} else {
			return err
		}
	}

	filtered := services.FilterTrips(trips, models.Bucket(*filter), *search)
	if len(filtered) == 0 {
		fmt.Fprintln(c.out, "No trips found")
		return nil
	}
	for _, trip := range filtered {
		renderTripRow(c.out, trip)
	}
	return nil
}

func (c *CLI) tripDetail(ctx context.Context, args []string) error {
	trip, stops, err := c.loadTrip(ctx, args)
	if err != nil {
		return err
	}

	renderTripDetail(c.out, trip)
	fmt.Fprintln(c.out, "Route stops:")

	next, hasNext := c.progress.NextAction(stops)
	for _, stop := range stops {
		renderStop(c.out, stop, next, hasNext)
	}

	completion := c.progress.Completion(trip, stops)
	if completion.StatusCompleted {
		fmt.Fprintln(c.out, Green+"All Stops Completed!"+Reset)
	}
	if completion.Diverged() {
		fmt.Fprintf(c.out, "%sNote: stop flags and trip status disagree (stops done: %v, status completed: %v)%s\n",
			Yellow, completion.AllStopsDone, completion.StatusCompleted, Reset)
	}

	if action, ok := c.progress.Actionable(trip, stops); ok {
		fmt.Fprintf(c.out, "Next: %s at stop %d (%s) -- run 'checkin %d'\n",
			action.Action, action.Stop.No, action.Stop.BusinessName, trip.ID)
	}
	return nil
}

func (c *CLI) checkIn(ctx context.Context, args []string) error {
	trip, stops, err := c.loadTrip(ctx, args)
	if err != nil {
		return err
	}

	action, ok := c.progress.Actionable(trip, stops)
	if !ok {
		fmt.Fprintln(c.out, "Nothing to check in on this trip")
		return nil
	}

	_, _, err = c.progress.CheckIn(ctx, trip, stops, action.Stop.ID, action.Action)
	if err != nil {
		if errors.Is(err, myerrors.ErrOutOfOrderCheckIn) {
			fmt.Fprintln(c.out, Red+"Please complete check-ins in order"+Reset)
		}
		return err
	}

	switch action.Action {
	case services.ActionArrive:
		fmt.Fprintf(c.out, "%sArrived at %s%s\n", Green, action.Stop.BusinessName, Reset)
	case services.ActionDepart:
		fmt.Fprintf(c.out, "%sDeparted from %s%s\n", Green, action.Stop.BusinessName, Reset)
	}
	return nil
}

func (c *CLI) history(ctx context.Context) error {
	completed, stats, err := c.trips.History(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Completed trips: %d   Earnings: %.2f   Avg: %.2f\n",
		stats.TotalTrips, stats.TotalEarnings, stats.AvgFare)
	for _, trip := range completed {
		renderTripRow(c.out, trip)
	}
	return nil
}

func (c *CLI) profile() error {
	user, ok := c.session.CurrentUser()
	if !ok {
		return myerrors.ErrNotAuthenticated
	}

	fmt.Fprintf(c.out, "%s\n", user.FullName())
	fmt.Fprintf(c.out, "  Email:      %s\n", user.Email)
	fmt.Fprintf(c.out, "  Phone:      %s\n", user.PhoneNumber)
	fmt.Fprintf(c.out, "  Dispatcher: %s\n", orNA(user.PrimaryDispatcherName))
	if exp, ok := c.session.TokenExpiry(); ok {
		fmt.Fprintf(c.out, "  Session expires: %s\n", exp.Format("2006-01-02 15:04"))
	}
	return nil
}

func (c *CLI) locationCmd(args []string) error {
	fs := flag.NewFlagSet("location", flag.ContinueOnError)
	set := fs.String("set", "", "remember this place as the current location")
	grant := fs.Bool("grant", false, "allow location sharing")
	skip := fs.Bool("skip", false, "dismiss the location prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *grant:
		if err := c.location.SetPermission(services.PermissionGranted); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Location sharing enabled")
	case *skip:
		if err := c.location.SetPermission(services.PermissionSkipped); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Location prompt dismissed")
	case *set != "":
		if err := c.location.RememberLocation(*set); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Location set to %s\n", *set)
	default:
		loc := c.location.LastLocation()
		if loc == "" {
			loc = "unknown"
		}
		fmt.Fprintf(c.out, "Current location: %s\n", loc)
	}
	return nil
}

func (c *CLI) track(ctx context.Context) error {
	driverID := c.session.DriverID()
	if driverID == "" {
		return myerrors.ErrNotAuthenticated
	}
	fmt.Fprintln(c.out, "Streaming location to dispatch, Ctrl-C to stop")
	return c.location.Track(ctx, driverID)
}

// loadTrip resolves a trip id argument into the trip and its sorted stops.
func (c *CLI) loadTrip(ctx context.Context, args []string) (models.Trip, []models.RouteStop, error) {
	if len(args) == 0 {
		return models.Trip{}, nil, fmt.Errorf("missing trip id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return models.Trip{}, nil, fmt.Errorf("bad trip id %q", args[0])
	}

	trips, err := c.trips.List(ctx)
	if err != nil {
		return models.Trip{}, nil, err
	}
	for _, trip := range trips {
		if trip.ID == id {
			stops, err := c.trips.RouteDetail(ctx, id)
			if err != nil {
				return models.Trip{}, nil, err
			}
			return trip, stops, nil
		}
	}
	return models.Trip{}, nil, fmt.Errorf("trip %d not found", id)
}
