package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ DocumentsModel = (*customDocumentsModel)(nil)

type (
	// DocumentsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customDocumentsModel.
	DocumentsModel interface {
		documentsModel
		withSession(session sqlx.Session) DocumentsModel
		ListFilenames(ctx context.Context) ([]string, error)
		Upsert(ctx context.Context, filename, content string) error
	}

	customDocumentsModel struct {
		*defaultDocumentsModel
	}
)

// NewDocumentsModel returns a model for the database table.
func NewDocumentsModel(conn sqlx.SqlConn) DocumentsModel {
	return &customDocumentsModel{
		defaultDocumentsModel: newDocumentsModel(conn),
	}
}

func (m *customDocumentsModel) withSession(session sqlx.Session) DocumentsModel {
	return NewDocumentsModel(sqlx.NewSqlConnFromSession(session))
}

// ListFilenames returns every stored filename in name order.
func (m *customDocumentsModel) ListFilenames(ctx context.Context) ([]string, error) {
	var rows []struct {
		Filename string `db:"filename"`
	}
	query := fmt.Sprintf("select `filename` from %s order by `filename`", m.table)
	if err := m.conn.QueryRowsCtx(ctx, &rows, query); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Filename)
	}
	return names, nil
}

// Upsert creates the document or replaces its content.
func (m *customDocumentsModel) Upsert(ctx context.Context, filename, content string) error {
	query := fmt.Sprintf("insert into %s (`filename`, `content`) values (?, ?) "+
		"on conflict(`filename`) do update set `content` = excluded.`content`, `updated_at` = CURRENT_TIMESTAMP", m.table)
	_, err := m.conn.ExecCtx(ctx, query, filename, content)
	return err
}
