// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-respond/internal/errorx"
	"github.com/joeblew999/plat-respond/internal/svc"
	"github.com/joeblew999/plat-respond/internal/types"
	tmpl "github.com/joeblew999/plat-respond/pkg/template"

	"github.com/zeromicro/go-zero/core/logx"
)

type UpdateTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateTemplateLogic {
	return &UpdateTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UpdateTemplate edits an existing template in place. The filename and the
// stored name never change.
func (l *UpdateTemplateLogic) UpdateTemplate(req *types.UpdateTemplateRequest) (resp *types.TemplateDetail, err error) {
	current, err := l.svcCtx.Store.Load(l.ctx, req.Filename)
	if err != nil {
		return nil, errorx.FromStore(err)
	}

	draft := tmpl.Draft{
		Name:        current.Name,
		Description: req.Description,
		Body:        req.Body,
		Variables:   variablesOrDetected(req.Variables, req.Body),
	}
	if err := draft.ValidateEdit(); err != nil {
		return nil, errorx.FromStore(err)
	}

	t := draft.Template()
	t.Name = current.Name
	if err := l.svcCtx.Store.Save(l.ctx, req.Filename, t); err != nil {
		return nil, errorx.FromStore(err)
	}

	l.Infow("Template updated", logx.Field("filename", req.Filename))
	return toDetail(req.Filename, t), nil
}
