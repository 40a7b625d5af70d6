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

type CreateTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateTemplateLogic {
	return &CreateTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateTemplate stores a new template under the filename derived from its
// name. An existing document with that filename is overwritten.
func (l *CreateTemplateLogic) CreateTemplate(req *types.CreateTemplateRequest) (resp *types.TemplateDetail, err error) {
	draft := tmpl.Draft{
		Name:        req.Name,
		Description: req.Description,
		Body:        req.Body,
		Variables:   variablesOrDetected(req.Variables, req.Body),
	}
	if err := draft.ValidateNew(); err != nil {
		return nil, errorx.FromStore(err)
	}

	t := draft.Template()
	filename := tmpl.FilenameFor(t.Name)
	if err := l.svcCtx.Store.Save(l.ctx, filename, t); err != nil {
		return nil, errorx.FromStore(err)
	}

	l.Infow("Template created", logx.Field("filename", filename))
	return toDetail(filename, t), nil
}
