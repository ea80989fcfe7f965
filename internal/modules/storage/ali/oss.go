package ali

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
	"github.com/reusedev/plant-hub/config"
	"github.com/reusedev/plant-hub/tools"
)

type Client struct {
	client        *oss.Client
	bucketName    string
	directory     string
	publicBaseURL string
}

func InitOSS(config config.AliOss) *Client {
	credential := credentials.NewStaticCredentialsProvider(config.AccessKeyId, config.AccessKeySecret, "")
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credential).
		WithEndpoint(config.Endpoint).WithRegion(config.Region)
	client := oss.NewClient(cfg)
	if client == nil {
		panic("create oss client failed")
	}
	return &Client{
		client:        client,
		bucketName:    config.Bucket,
		directory:     config.Directory,
		publicBaseURL: config.PublicBaseURL,
	}
}

// Save uploads data under a random key and returns its public URL.
func (o *Client) Save(ctx context.Context, name string, data []byte) (string, error) {
	key := o.fullPath(uuid.New().String() + filepath.Ext(name))
	contentType := "image/" + tools.DetectImageType(data).String()
	if err := o.upload(ctx, name, key, contentType, bytes.NewReader(data)); err != nil {
		return "", err
	}
	return o.ref(key), nil
}

func (o *Client) Delete(ctx context.Context, ref string) error {
	key, err := o.key(ref)
	if err != nil {
		return err
	}
	_, err = o.client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(o.bucketName),
		Key:    oss.Ptr(key),
	})
	return err
}

func (o *Client) fullPath(fName string) string {
	return o.directory + fName
}

func (o *Client) ref(key string) string {
	if o.publicBaseURL == "" {
		return key
	}
	return tools.FullURL(o.publicBaseURL, key)
}

func (o *Client) key(ref string) (string, error) {
	if o.publicBaseURL == "" {
		return ref, nil
	}
	key, ok := strings.CutPrefix(ref, tools.FullURL(o.publicBaseURL, "")+"/")
	if !ok || key == "" {
		return "", fmt.Errorf("not an oss image reference: %s", ref)
	}
	return key, nil
}

func (o *Client) upload(ctx context.Context, fName, key, contentType string, reader io.Reader) error {
	request := &oss.PutObjectRequest{
		Bucket:             oss.Ptr(o.bucketName),
		Key:                oss.Ptr(key),
		Body:               reader,
		ContentType:        oss.Ptr(contentType),
		ContentDisposition: oss.Ptr(fmt.Sprintf("inline; filename=\"%s\"", fName)),
	}
	_, err := o.client.PutObject(ctx, request)
	if err != nil {
		return err
	}
	return nil
}
