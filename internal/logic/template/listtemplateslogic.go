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

type ListTemplatesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListTemplatesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListTemplatesLogic {
	return &ListTemplatesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListTemplatesLogic) ListTemplates(req *types.ListTemplatesRequest) (resp *types.ListTemplatesResponse, err error) {
	listing, err := l.svcCtx.Store.Browse(l.ctx, tmpl.Filter{
		Users:  splitFacet(req.User),
		Skills: splitFacet(req.Skill),
		Query:  req.Query,
	})
	if err != nil {
		return nil, errorx.FromStore(err)
	}

	for _, w := range listing.Warnings {
		l.Infow("Template skipped", logx.Field("warning", w))
	}

	templates := make([]types.TemplateSummary, 0, len(listing.Entries))
	for _, e := range listing.Entries {
		templates = append(templates, toSummary(e.Info, e.Template))
	}

	return &types.ListTemplatesResponse{
		Total:     listing.Total,
		Templates: templates,
		Users:     listing.Facets.Users,
		Skills:    listing.Facets.Skills,
		Warnings:  listing.Warnings,
	}, nil
}
