package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, args []string) error {
	p, err := NewProgram(args)
	if nil != err {
		return err
	}
	defer p.Close()
	return p.Run(ctx)
}
