package auth

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest accepts either the account name or the email address in
// the login field.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type UpdatePreferencesRequest struct {
	SelectedCategories    []string `json:"selectedCategories"`
	SelectedSubCategories []string `json:"selectedSubCategories"`
	OneTimeMonitChecked   *bool    `json:"oneTimeMonitChecked,omitempty"`
}
