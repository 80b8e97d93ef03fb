package command

import "blog-service/internal/application/common"

type CreatePostCommand struct {
	Text string `json:"text"`
}

type CreatePostCommandResult struct {
	Result *common.PostResult `json:"result"`
}
