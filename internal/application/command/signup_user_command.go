package command

import "blog-service/internal/application/common"

type SignupUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
