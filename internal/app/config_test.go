package service_test

import (
	"context"
	"testing"

	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/config"
	"github.com/okian/explorer/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOptionsFromConfig(t *testing.T) {
	Convey("Given a configuration", t, func() {
		cfg := config.New()
		cfg.ChainBound = 7
		cfg.DefaultSeason = 2019

		Convey("The service picks up its settings", func() {
			opts, err := service.OptionsFromConfig(cfg, logger.Discard())
			So(err, ShouldBeNil)
			svc := service.New(opts...)
			So(svc.ChainBound(), ShouldEqual, 7)
			So(svc.DefaultSeason(), ShouldEqual, 2019)
			So(svc.Start(context.Background()), ShouldBeNil)
			defer svc.Stop()
		})

		Convey("A nil configuration falls back to defaults", func() {
			opts, err := service.OptionsFromConfig(nil, nil)
			So(err, ShouldBeNil)
			So(service.New(opts...).ChainBound(), ShouldEqual, 50)
		})

		Convey("A relative base URL is rejected", func() {
			cfg.PokeAPIBaseURL = "/pokeapi"
			_, err := service.OptionsFromConfig(cfg, nil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "pokeapi client")
		})
	})
}
