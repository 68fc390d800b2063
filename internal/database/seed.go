package database

import (
	"kairos/internal/domain"

	"gorm.io/gorm"
)

func roleRef(r domain.UserRole) *domain.UserRole { return &r }

// Seed installs the bootstrap roster so the moderation views render
// non-empty on a fresh in-memory store. Skipped when any user exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []domain.User{
		{
			Name:         "Pastor Mukai",
			Email:        "moderator@kairos.community",
			Role:         domain.RoleAdmin,
			Status:       domain.StatusApproved,
			AvatarURL:    "https://picsum.photos/seed/moderator/100/100",
			IsGCMember:   true,
			City:         "São Paulo",
			Age:          "45",
			LoginCount:   120,
			IsSuperAdmin: true,
		},
		{
			Name:       "Community Desk",
			Email:      "desk@kairos.community",
			Role:       domain.RoleEditor,
			Status:     domain.StatusApproved,
			AvatarURL:  "https://picsum.photos/seed/desk/100/100",
			IsGCMember: true,
			City:       "Curitiba",
			Age:        "30",
			LoginCount: 45,
		},
		{
			Name:       "Events Team",
			Email:      "events@kairos.community",
			Role:       domain.RoleEditor,
			Status:     domain.StatusApproved,
			AvatarURL:  "https://picsum.photos/seed/events/100/100",
			City:       "Remoto",
			Age:        "28",
			LoginCount: 88,
		},
		{
			Name:       "Visitor Account",
			Email:      "visitor@kairos.community",
			Role:       domain.RoleViewer,
			Status:     domain.StatusApproved,
			AvatarURL:  "https://picsum.photos/seed/visitor/100/100",
			City:       "Campinas",
			Age:        "20",
			LoginCount: 12,
		},
		{
			// Pending promotion request, so /admin/promotions has a row
			// on first boot.
			Name:          "Lucas",
			Email:         "lucas@kairos.community",
			Role:          domain.RoleEditor,
			Status:        domain.StatusApproved,
			AvatarURL:     "https://picsum.photos/seed/lucas/100/100",
			IsGCMember:    true,
			City:          "Toyohashi",
			Age:           "32",
			LoginCount:    15,
			RequestedRole: roleRef(domain.RoleAdmin),
		},
	}

	return db.Create(&users).Error
}
