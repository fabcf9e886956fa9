// Package catalog 封装音乐曲库（Spotify Web API）查询
package catalog

import (
	"Mirsui/config"
	"Mirsui/pkg/log"
	"context"
	"errors"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"
)

var ErrTrackNotFound = errors.New("曲目不存在")

// Track 曲库返回的曲目元数据
type Track struct {
	URI        string `json:"uri"`
	URL        string `json:"url"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	ArtworkURL string `json:"artwork_url"`
	Popularity int    `json:"popularity"` // 0-100
	DurationMs int    `json:"duration_ms"`
}

type Client struct {
	api *spotify.Client
}

// NewClient 使用 client credentials 模式构造曲库客户端
func NewClient(conf *config.CatalogConfig) *Client {
	cfg := &clientcredentials.Config{
		ClientID:     conf.ClientID,
		ClientSecret: conf.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := cfg.Token(context.Background())
	if err != nil {
		log.L.Fatal("connect catalog error", zap.Error(err))
	}
	httpClient := spotifyauth.New().Client(context.Background(), token)
	log.L.Info("catalog client success")
	return &Client{api: spotify.New(httpClient)}
}

// SearchTracks 按关键词搜索曲目
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	result, err := c.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, err
	}
	tracks := make([]Track, 0)
	if result.Tracks == nil {
		return tracks, nil
	}
	for _, t := range result.Tracks.Tracks {
		tracks = append(tracks, convertTrack(t))
	}
	return tracks, nil
}

// GetTrack 按 URI 查询单曲
func (c *Client) GetTrack(ctx context.Context, trackURI string) (*Track, error) {
	id := TrackID(trackURI)
	if id == "" {
		return nil, ErrTrackNotFound
	}
	t, err := c.api.GetTrack(ctx, spotify.ID(id))
	if err != nil {
		return nil, err
	}
	track := convertTrack(*t)
	return &track, nil
}

// GetPopularity 查询曲目当前流行度
func (c *Client) GetPopularity(ctx context.Context, trackURI string) (int, error) {
	track, err := c.GetTrack(ctx, trackURI)
	if err != nil {
		return 0, err
	}
	return track.Popularity, nil
}

// TrackID 从 spotify:track:xxx 或纯ID中取出曲目ID
func TrackID(trackURI string) string {
	if trackURI == "" {
		return ""
	}
	if strings.HasPrefix(trackURI, "spotify:track:") {
		return strings.TrimPrefix(trackURI, "spotify:track:")
	}
	if strings.Contains(trackURI, ":") {
		return ""
	}
	return trackURI
}

func convertTrack(t spotify.FullTrack) Track {
	artists := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		artists = append(artists, a.Name)
	}
	artwork := ""
	if len(t.Album.Images) > 0 {
		artwork = t.Album.Images[0].URL
	}
	return Track{
		URI:        string(t.URI),
		URL:        t.ExternalURLs["spotify"],
		Title:      t.Name,
		Artist:     strings.Join(artists, ", "),
		Album:      t.Album.Name,
		ArtworkURL: artwork,
		Popularity: int(t.Popularity),
		DurationMs: int(t.Duration),
	}
}
