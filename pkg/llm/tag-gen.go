package llm

import (
	"Mirsui/config"
	"Mirsui/pkg/log"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

type Client struct {
	api   openai.Client
	model string
}

func NewClient(conf *config.LlmConfig) *Client {
	api := openai.NewClient(
		option.WithAPIKey(conf.APIKey),
		option.WithBaseURL(conf.BaseURL),
	)
	return &Client{api: api, model: conf.Model}
}

// GenDiscoveryTags 为认领曲目生成发现标签，失败返回空切片
func (c *Client) GenDiscoveryTags(ctx context.Context, title, artist, message string) []string {
	promptText := fmt.Sprintf(
		"作为音乐发现平台的运营专家，为下面这首被用户抢先认领的歌曲，只输出5个发现话题标签，用#开头，用空格分隔，不要任何其他内容。\n\n"+
			"【歌曲】：%s\n"+
			"【歌手】：%s\n"+
			"【认领留言】：%s",
		title, artist, message,
	)
	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfString: openai.String(promptText),
		},
	}
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userMessage},
		},
	}
	startTime := time.Now()
	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("failed to gen tag", zap.Error(err))
		return make([]string, 0)
	}
	content := completion.Choices[0].Message.Content
	log.L.Info("gen tag", zap.String("tag", content), zap.Duration("gen time", time.Since(startTime)))
	return ParseTags(content)
}

func ParseTags(input string) []string {
	re := regexp.MustCompile(`#[^\s#]+`)
	matches := re.FindAllString(input, -1)

	var tags []string
	for _, tag := range matches {
		cleanTag := strings.TrimPrefix(tag, "#")
		tags = append(tags, cleanTag)
	}
	return tags
}
