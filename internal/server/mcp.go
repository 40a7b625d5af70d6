package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/joeblew999/plat-respond/internal/logic/template"
	"github.com/joeblew999/plat-respond/internal/svc"
	"github.com/joeblew999/plat-respond/internal/types"
	"github.com/zeromicro/go-zero/mcp"
)

const templatesURI = "respond://templates"

type toolHandler = func(ctx context.Context, p map[string]any) (any, error)

// RegisterMCPTools registers all MCP tools for the template store.
func RegisterMCPTools(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	registerListTemplatesTool(s, svcCtx)
	registerGetTemplateTool(s, svcCtx)
	registerRenderTool(s, svcCtx)
	registerSaveTemplateTool(s, svcCtx)
	registerDetectVariablesTool(s, svcCtx)
	registerTemplatesResource(s, svcCtx)
}

func registerListTemplatesTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name: "list_templates",
		Description: "List email response templates with their user alias, skill and description. " +
			"Templates are named <user>_<skill>_<name>.json.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"user": map[string]any{
					"type":        "string",
					"description": "Comma-separated user aliases to include (default: all)",
				},
				"skill": map[string]any{
					"type":        "string",
					"description": "Comma-separated skills to include (default: all)",
				},
				"query": map[string]any{
					"type":        "string",
					"description": "Case-insensitive filename search",
				},
			},
		},
		Handler: listTemplatesHandler(svcCtx),
	})
}

func registerGetTemplateTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name:        "get_template",
		Description: "Get one template's body, declared variables and detected placeholders, with a warning when they disagree.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"filename": map[string]any{
					"type":        "string",
					"description": "Template filename (e.g., sam_billing_late.json)",
				},
			},
			Required: []string{"filename"},
		},
		Handler: getTemplateHandler(svcCtx),
	})
}

func registerRenderTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name:        "render_template",
		Description: "Fill a template's {placeholders} with values and return the email text. Fails if a placeholder has no value.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"filename": map[string]any{
					"type":        "string",
					"description": "Template filename (e.g., sam_billing_late.json)",
				},
				"values": map[string]any{
					"type":        "object",
					"description": "Placeholder values as key-value pairs (e.g., {\"name\": \"Sam\"})",
				},
			},
			Required: []string{"filename"},
		},
		Handler: renderTemplateHandler(svcCtx),
	})
}

func registerSaveTemplateTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name: "save_template",
		Description: "Create a template, or update one when filename is given. " +
			"Variables default to the placeholders found in the body.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"filename": map[string]any{
					"type":        "string",
					"description": "Existing template to update; omit to create a new one from name",
				},
				"name": map[string]any{
					"type":        "string",
					"description": "Template name for new templates, as <useralias>_<skill>_<templatename>",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "When to use this template",
				},
				"body": map[string]any{
					"type":        "string",
					"description": "Email body using {variable} placeholders",
				},
				"variables": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Declared variables shown as inputs",
				},
			},
			Required: []string{"description", "body"},
		},
		Handler: saveTemplateHandler(svcCtx),
	})
}

func registerDetectVariablesTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name:        "detect_variables",
		Description: "List the distinct {placeholder} names in an email body, in order of first appearance.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"body": map[string]any{
					"type":        "string",
					"description": "Email body",
				},
			},
			Required: []string{"body"},
		},
		Handler: detectVariablesHandler(svcCtx),
	})
}

func listTemplatesHandler(svcCtx *svc.ServiceContext) toolHandler {
	return func(ctx context.Context, p map[string]any) (any, error) {
		var args struct {
			User  string `json:"user,optional"`
			Skill string `json:"skill,optional"`
			Query string `json:"query,optional"`
		}
		if err := mcp.ParseArguments(p, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}

		resp, err := template.NewListTemplatesLogic(ctx, svcCtx).ListTemplates(&types.ListTemplatesRequest{
			User:  args.User,
			Skill: args.Skill,
			Query: args.Query,
		})
		if err != nil {
			return nil, fmt.Errorf("list templates: %w", err)
		}
		return resp, nil
	}
}

func getTemplateHandler(svcCtx *svc.ServiceContext) toolHandler {
	return func(ctx context.Context, p map[string]any) (any, error) {
		var args struct {
			Filename string `json:"filename"`
		}
		if err := mcp.ParseArguments(p, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}

		resp, err := template.NewGetTemplateLogic(ctx, svcCtx).GetTemplate(&types.GetTemplateRequest{
			Filename: args.Filename,
		})
		if err != nil {
			return nil, fmt.Errorf("get template: %w", err)
		}
		return resp, nil
	}
}

func renderTemplateHandler(svcCtx *svc.ServiceContext) toolHandler {
	return func(ctx context.Context, p map[string]any) (any, error) {
		var args struct {
			Filename string            `json:"filename"`
			Values   map[string]string `json:"values,optional"`
		}
		if err := mcp.ParseArguments(p, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}

		resp, err := template.NewRenderTemplateLogic(ctx, svcCtx).RenderTemplate(&types.RenderTemplateRequest{
			Filename: args.Filename,
			Values:   args.Values,
		})
		if err != nil {
			return nil, fmt.Errorf("render failed: %w", err)
		}
		return resp, nil
	}
}

func saveTemplateHandler(svcCtx *svc.ServiceContext) toolHandler {
	return func(ctx context.Context, p map[string]any) (any, error) {
		var args struct {
			Filename    string   `json:"filename,optional"`
			Name        string   `json:"name,optional"`
			Description string   `json:"description"`
			Body        string   `json:"body"`
			Variables   []string `json:"variables,optional"`
		}
		if err := mcp.ParseArguments(p, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}

		var (
			resp *types.TemplateDetail
			err  error
		)
		if args.Filename != "" {
			resp, err = template.NewUpdateTemplateLogic(ctx, svcCtx).UpdateTemplate(&types.UpdateTemplateRequest{
				Filename:    args.Filename,
				Description: args.Description,
				Body:        args.Body,
				Variables:   args.Variables,
			})
		} else {
			resp, err = template.NewCreateTemplateLogic(ctx, svcCtx).CreateTemplate(&types.CreateTemplateRequest{
				Name:        args.Name,
				Description: args.Description,
				Body:        args.Body,
				Variables:   args.Variables,
			})
		}
		if err != nil {
			return nil, fmt.Errorf("save failed: %w", err)
		}
		return resp, nil
	}
}

func detectVariablesHandler(svcCtx *svc.ServiceContext) toolHandler {
	return func(ctx context.Context, p map[string]any) (any, error) {
		var args struct {
			Body string `json:"body"`
		}
		if err := mcp.ParseArguments(p, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}

		return template.NewDetectVariablesLogic(ctx, svcCtx).DetectVariables(&types.DetectVariablesRequest{
			Body: args.Body,
		})
	}
}

func registerTemplatesResource(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterResource(mcp.Resource{
		Name:        "templates",
		URI:         templatesURI,
		Description: "Available email response templates",
		MimeType:    "text/plain",
		Handler: func(ctx context.Context) (mcp.ResourceContent, error) {
			resp, err := template.NewListTemplatesLogic(ctx, svcCtx).ListTemplates(&types.ListTemplatesRequest{})
			if err != nil {
				return mcp.ResourceContent{}, fmt.Errorf("list templates: %w", err)
			}

			return mcp.ResourceContent{
				URI:      templatesURI,
				MimeType: "text/plain",
				Text:     templatesText(resp),
			}, nil
		},
	})
}

func templatesText(resp *types.ListTemplatesResponse) string {
	var b strings.Builder
	b.WriteString("Available templates:\n")
	for _, t := range resp.Templates {
		fmt.Fprintf(&b, "- %s: %s", t.Filename, t.Label)
		if len(t.Variables) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(t.Variables, ", "))
		}
		b.WriteString("\n")
	}
	for _, w := range resp.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	return b.String()
}
