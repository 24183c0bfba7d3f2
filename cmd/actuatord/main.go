package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	fx "github.com/robotalks/actuator.go/pkg/framework"
	"github.com/robotalks/actuator.go/pkg/l0/actuator"
	"github.com/robotalks/actuator.go/pkg/l1/env"
)

func init() {
	actuator.SetupFlags()
	env.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	profile := actuator.Default().MustNewProfile()
	e := env.Default().MustNewEnv(profile)
	glog.Infof("starting %s", e.Controller.Name())
	fx.NewRunner().HandleSignals().Go(e.Runnables()...).RunOrFail()
}
