package domain

import "github.com/google/uuid"

// Profile краткий профиль пользователя (руководителя проекта)
type Profile struct {
	ID          uuid.UUID
	DisplayName string
	Email       *string
	AvatarURL   *string
}

// JobInfo данные работы, подтягиваемые в записи календаря
// Lead заполняется только запросом календаря всей компании
type JobInfo struct {
	ID    uuid.UUID
	Title string
	Lead  *Profile
}
