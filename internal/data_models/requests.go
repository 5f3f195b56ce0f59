package dto

type SignupRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Address     *string `json:"address,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Description *string `json:"description,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterBenefactorRequest struct {
	Experience      int `json:"experience"`
	FreeTimePerWeek int `json:"free_time_per_week"`
}

type RegisterCharityRequest struct {
	Name      string `json:"name"`
	RegNumber string `json:"reg_number"`
}

type CreateTaskRequest struct {
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Date         *string `json:"date,omitempty"`
	AgeLimitFrom *int    `json:"age_limit_from,omitempty"`
	AgeLimitTo   *int    `json:"age_limit_to,omitempty"`
	GenderLimit  *string `json:"gender_limit,omitempty"`
}

type TaskResponseRequest struct {
	Response string `json:"response"`
}
