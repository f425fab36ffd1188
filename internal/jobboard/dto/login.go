package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	User        UserOutput `json:"user"`
	AccessToken string     `json:"accessToken"`
}
