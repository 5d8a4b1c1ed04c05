// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package publish

import (
	"context"
	"fmt"
	"os"
	"path"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// GCS is a Publisher that uploads objects to a Cloud Storage bucket.
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewGCS returns a Publisher that stores name as the object
// prefix/name in bucket.
func NewGCS(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*GCS, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return &GCS{client: client, bucket: bucket, prefix: prefix}, nil
}

// Credentials returns a client option authenticating with the
// service account key in keyFile, or with application default
// credentials if keyFile is empty.
func Credentials(ctx context.Context, keyFile string) (option.ClientOption, error) {
	if keyFile == "" {
		ts, err := google.DefaultTokenSource(ctx, storage.ScopeReadWrite)
		if err != nil {
			return nil, err
		}
		return option.WithTokenSource(ts), nil
	}
	data, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, err
	}
	creds, err := google.CredentialsFromJSON(ctx, data, storage.ScopeReadWrite)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyFile, err)
	}
	return option.WithCredentials(creds), nil
}

func (g *GCS) object(name string) string {
	return path.Join(g.prefix, name)
}

func (g *GCS) Put(ctx context.Context, name, contentType string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	w := g.client.Bucket(g.bucket).Object(g.object(name)).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gs://%s/%s: %w", g.bucket, g.object(name), err)
	}
	return nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}
