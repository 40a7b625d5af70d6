package drive

import (
	"bytes"
	"context"
	"fmt"
	"io"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// filesAPI is the slice of the Drive files resource the backend uses.
type filesAPI interface {
	find(ctx context.Context, query string) ([]*gdrive.File, error)
	download(ctx context.Context, id string) ([]byte, error)
	create(ctx context.Context, meta *gdrive.File, content []byte) error
	update(ctx context.Context, id string, content []byte) error
}

type serviceFiles struct {
	svc *gdrive.Service
}

func (s *serviceFiles) find(ctx context.Context, query string) ([]*gdrive.File, error) {
	var files []*gdrive.File
	err := s.svc.Files.List().
		Q(query).
		Fields("nextPageToken", "files(id, name)").
		PageSize(1000).
		Pages(ctx, func(page *gdrive.FileList) error {
			files = append(files, page.Files...)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *serviceFiles) download(ctx context.Context, id string) ([]byte, error) {
	resp, err := s.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", id, err)
	}
	return data, nil
}

func (s *serviceFiles) create(ctx context.Context, meta *gdrive.File, content []byte) error {
	_, err := s.svc.Files.Create(meta).
		Media(bytes.NewReader(content), googleapi.ContentType(MimeType)).
		Fields("id").
		Context(ctx).
		Do()
	return err
}

func (s *serviceFiles) update(ctx context.Context, id string, content []byte) error {
	_, err := s.svc.Files.Update(id, &gdrive.File{}).
		Media(bytes.NewReader(content), googleapi.ContentType(MimeType)).
		Fields("id").
		Context(ctx).
		Do()
	return err
}
