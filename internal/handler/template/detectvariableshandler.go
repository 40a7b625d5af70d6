// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"net/http"

	"github.com/joeblew999/plat-respond/internal/errorx"
	"github.com/joeblew999/plat-respond/internal/logic/template"
	"github.com/joeblew999/plat-respond/internal/svc"
	"github.com/joeblew999/plat-respond/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func DetectVariablesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.DetectVariablesRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrBadRequest(err.Error()))
			return
		}

		l := template.NewDetectVariablesLogic(r.Context(), svcCtx)
		resp, err := l.DetectVariables(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
