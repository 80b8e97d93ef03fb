package query

import "blog-service/internal/application/common"

type PostsQueryResult struct {
	Result []common.PostResult `json:"result"`
}
