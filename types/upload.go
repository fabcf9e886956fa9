package types

// UploadImageResp 图片上传响应
type UploadImageResp struct {
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
}
