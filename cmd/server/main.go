package main

import (
	"flag"

	"github.com/joeblew999/plat-respond/internal/config"
	"github.com/joeblew999/plat-respond/internal/server"
	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	configFile := flag.String("f", "etc/plat-respond.yaml", "config file path")
	envFile := flag.String("env", ".env", "dotenv file loaded before the config")
	flag.Parse()

	logx.DisableStat()

	// a missing .env is fine; the environment may already be set
	if err := godotenv.Load(*envFile); err == nil {
		logx.Infof("Loaded environment from %s", *envFile)
	}

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	s, err := server.New(c)
	logx.Must(err)

	s.Start()
}
