package http_user

import (
	"fmt"
	"time"

	http_common "github.com/ZeNuW/filmorate/internal/delivery/http/common"
	"github.com/ZeNuW/filmorate/internal/model"
)

type UserRequestDTO struct {
	ID       int64  `json:"id" example:"1"`
	Email    string `json:"email" example:"mail@mail.ru"`
	Login    string `json:"login" example:"dolore"`
	Name     string `json:"name" example:"Nick Name"`
	Birthday string `json:"birthday" example:"1946-08-20"`
}

type UserResponseDTO struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday string `json:"birthday,omitempty"`
}

type FriendshipStatusDTO struct {
	UserID    int64 `json:"userId"`
	FriendID  int64 `json:"friendId"`
	Confirmed bool  `json:"confirmed"`
}

func (r *UserRequestDTO) ConvertToUser() (model.User, error) {
	user := model.User{
		ID:    r.ID,
		Email: r.Email,
		Login: r.Login,
		Name:  r.Name,
	}
	if r.Birthday == "" {
		return user, nil
	}

	birthday, err := time.Parse(http_common.DateLayout, r.Birthday)
	if err != nil {
		return model.User{}, fmt.Errorf("birthday must be formatted as %s: %w", http_common.DateLayout, err)
	}
	user.Birthday = birthday
	return user, nil
}

func ConvertFromUser(u model.User) UserResponseDTO {
	resp := UserResponseDTO{
		ID:    u.ID,
		Email: u.Email,
		Login: u.Login,
		Name:  u.Name,
	}
	if !u.Birthday.IsZero() {
		resp.Birthday = u.Birthday.Format(http_common.DateLayout)
	}
	return resp
}

func ConvertFromUserList(users []model.User) []UserResponseDTO {
	resp := make([]UserResponseDTO, len(users))
	for i, u := range users {
		resp[i] = ConvertFromUser(u)
	}
	return resp
}
