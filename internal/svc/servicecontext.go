// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"github.com/joeblew999/plat-respond/internal/config"
	"github.com/joeblew999/plat-respond/pkg/store"
)

type ServiceContext struct {
	Config config.Config
	Store  *store.Store
}

func NewServiceContext(c config.Config, st *store.Store) *ServiceContext {
	return &ServiceContext{
		Config: c,
		Store:  st,
	}
}
