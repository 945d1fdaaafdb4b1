package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nonabeauty/storeadmin/config"
	"github.com/nonabeauty/storeadmin/internal/adminapi"
	"github.com/nonabeauty/storeadmin/internal/app"
	"github.com/nonabeauty/storeadmin/internal/webserver"
)

var (
	h        = flag.Bool("h", false, "help usage")
	conffile = flag.String("c", "", "config file")
	initdb   = flag.Bool("initdb", false, "drop all records and reseed defaults")
)

func printHelp() {
	if *h {
		ustr := fmt.Sprintf("storeadmin usage:\nUsage: %s [-h] [-c config_file] [-initdb]\nOptions:", os.Args[0])
		fmt.Fprintln(os.Stderr, ustr)
		flag.PrintDefaults()
		os.Exit(0)
	}
}

func main() {
	flag.Parse()
	printHelp()

	appConfig := config.LoadConfig(*conffile)
	application := app.NewApplication(appConfig)
	if err := application.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.L().Info("store reinitialized")
		return
	}

	web := webserver.Init(appConfig, application)
	adminapi.Register()
	application.StartScheduler()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// ErrServerClosed is the normal outcome of a drained shutdown
		if err := web.Listen(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		web.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server exited", zap.Error(err))
	}
}
