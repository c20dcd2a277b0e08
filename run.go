package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spencer-p/beachride/pkg/cache"
	"github.com/spencer-p/beachride/pkg/config"
	"github.com/spencer-p/beachride/pkg/metrics"
	"github.com/spencer-p/beachride/pkg/noaa"
	"github.com/spencer-p/beachride/pkg/notify"
	"github.com/spencer-p/beachride/pkg/ride"
	"github.com/spencer-p/beachride/pkg/sunset"
	"github.com/spencer-p/beachride/pkg/timetricks"
)

// runner carries everything one report needs. Nothing outlives a run except
// the client's page cache.
type runner struct {
	cfg       *config.Config
	opts      *Options
	client    *noaa.Client
	notifiers []notify.Notifier
	now       func() time.Time
}

func newRunner(cfg *config.Config, opts *Options) *runner {
	client := noaa.NewClient(cfg.FetchTimeout)
	client.UserAgent = cfg.UserAgent
	client.PageURL = cfg.PageURL
	client.APIURL = cfg.APIURL
	if cfg.CacheTTL > 0 {
		client.Cache = cache.NewTimed(cfg.CacheTTL)
	}

	return &runner{
		cfg:       cfg,
		opts:      opts,
		client:    client,
		notifiers: notifiers(cfg, opts.Print, os.Stdout),
		now:       time.Now,
	}
}

// notifiers lists where a report goes. Mail always comes first.
func notifiers(cfg *config.Config, echo bool, stdout io.Writer) []notify.Notifier {
	ns := []notify.Notifier{notify.NewMail(cfg.Mail)}
	if echo {
		ns = append(ns, notify.Console{W: stdout})
	}
	if cfg.Telegram.Token != "" {
		ns = append(ns, notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID))
	}
	return ns
}

// run builds one report and sends it. A report that cannot be built is an
// error and nothing is sent; failing to send is only logged.
func (r *runner) run(ctx context.Context) (err error) {
	defer func() {
		metrics.ObserveRun(err)
		if r.cfg.PushGateway == "" {
			return
		}
		if perr := metrics.Push(r.cfg.PushGateway); perr != nil {
			log.Printf("Failed to push metrics: %v", perr)
		}
	}()

	msg, err := r.report(ctx)
	if err != nil {
		return err
	}

	log.Printf("Found %d good times between %s and %s",
		len(msg.GoodTimes),
		timetricks.UniqueDay(msg.Range.Start),
		timetricks.UniqueDay(msg.Range.End))
	notify.Dispatch(ctx, ride.Subject, msg.String(), r.notifiers...)
	return nil
}

func (r *runner) report(ctx context.Context) (ride.Message, error) {
	mode, err := timetricks.ParseMonthMode(r.cfg.Month)
	if err != nil {
		return ride.Message{}, err
	}
	days := timetricks.Resolve(r.now(), mode, r.opts.Test12)

	var lowTides noaa.Predictions
	if r.opts.Test {
		// The fixture stands in for already filtered low tides.
		lowTides = noaa.FixturePredictions()
	} else {
		preds, err := r.fetch(ctx, days)
		if err != nil {
			return ride.Message{}, err
		}
		metrics.ObserveTides("fetched", len(preds))
		lowTides = ride.LowTides(preds, noaa.Height(r.cfg.LowTideLevel))
	}
	metrics.ObserveTides("low", len(lowTides))

	var filters []ride.Filter
	if r.cfg.Daylight {
		filters = append(filters, daylight(lowTides))
	}

	window := ride.Window{Early: r.cfg.Early, Late: r.cfg.Late}
	goodTimes := window.GoodTimes(lowTides, filters...)
	metrics.ObserveTides("good", len(goodTimes))

	return ride.Message{Range: days, GoodTimes: goodTimes}, nil
}

func (r *runner) fetch(ctx context.Context, days timetricks.Range) (noaa.Predictions, error) {
	query := noaa.PredictionQuery{
		Start:   days.Start,
		End:     days.End,
		Station: noaa.MontereyBay,
	}

	get := r.client.GetTable
	if r.cfg.Source == config.SourceAPI {
		get = r.client.GetPredictions
	}

	start := time.Now()
	preds, err := get(ctx, &query)
	metrics.ObserveFetch(r.cfg.Source, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from NOAA: %w", err)
	}
	return preds, nil
}

// daylight builds a filter covering every day the tides span.
func daylight(tides noaa.Predictions) ride.Filter {
	if len(tides) == 0 {
		return func(time.Time) bool { return false }
	}
	first := timetricks.TrimClock(tides[0].T())
	last := tides[len(tides)-1].T()
	numDays := int(last.Sub(first).Hours()/24) + 1

	events := sunset.GetSunEvents(first, numDays, sunset.MontereyBay)
	return func(t time.Time) bool {
		return events.InDaylight(t, sunset.MontereyBay)
	}
}
