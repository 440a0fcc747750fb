package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sagernet/ddp-server/extensions/static"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := newCommand().Execute()
	if err != nil {
		logrus.Fatal(err)
	}
}

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ddp-server",
		Short: "serve the DDP calculator and open it in a browser",
		Args:  cobra.NoArgs,
		Run:   run,
	}
}

func run(cmd *cobra.Command, args []string) {
	config, err := static.DefaultConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	server, err := static.NewServer(config)
	if err != nil {
		logrus.Fatal(err)
	}
	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, os.Interrupt, syscall.SIGTERM)
	err = server.Start()
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("serving ", config.Directory, " at ", server.Addr())
	<-osSignals

	server.Close()
}
