// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-respond/internal/errorx"
	"github.com/joeblew999/plat-respond/internal/svc"
	"github.com/joeblew999/plat-respond/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type RenderTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRenderTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RenderTemplateLogic {
	return &RenderTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RenderTemplateLogic) RenderTemplate(req *types.RenderTemplateRequest) (resp *types.RenderTemplateResponse, err error) {
	t, err := l.svcCtx.Store.Load(l.ctx, req.Filename)
	if err != nil {
		return nil, errorx.FromStore(err)
	}

	text, err := t.Render(req.Values)
	if err != nil {
		return nil, errorx.FromStore(err)
	}

	return &types.RenderTemplateResponse{
		Filename: req.Filename,
		Text:     text,
		Warning:  t.Divergence().String(),
	}, nil
}
