// Package video 封装视频平台（YouTube Data API）查询
package video

import (
	"Mirsui/config"
	"Mirsui/pkg/log"
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type Client struct {
	service *youtube.Service
}

func NewClient(conf *config.VideoConfig) *Client {
	service, err := youtube.NewService(context.Background(), option.WithAPIKey(conf.APIKey))
	if err != nil {
		log.L.Fatal("connect video platform error", zap.Error(err))
	}
	log.L.Info("video client success")
	return &Client{service: service}
}

// FindWatchURL 按 标题+歌手 搜索可播放链接，未命中返回空串
func (c *Client) FindWatchURL(ctx context.Context, title, artist string) (string, error) {
	query := fmt.Sprintf("%s %s", title, artist)
	call := c.service.Search.List([]string{"id"}).
		Q(query).
		Type("video").
		MaxResults(1).
		Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return "", err
	}
	if len(resp.Items) == 0 || resp.Items[0].Id == nil || resp.Items[0].Id.VideoId == "" {
		return "", nil
	}
	return "https://www.youtube.com/watch?v=" + resp.Items[0].Id.VideoId, nil
}
