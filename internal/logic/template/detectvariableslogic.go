// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-respond/internal/svc"
	"github.com/joeblew999/plat-respond/internal/types"
	tmpl "github.com/joeblew999/plat-respond/pkg/template"

	"github.com/zeromicro/go-zero/core/logx"
)

type DetectVariablesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDetectVariablesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DetectVariablesLogic {
	return &DetectVariablesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DetectVariablesLogic) DetectVariables(req *types.DetectVariablesRequest) (resp *types.DetectVariablesResponse, err error) {
	return &types.DetectVariablesResponse{
		Variables: nonNil(tmpl.DetectVariables(req.Body)),
	}, nil
}
