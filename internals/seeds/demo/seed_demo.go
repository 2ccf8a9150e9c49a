package demo

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	orgModel "ritmo_backend/internals/features/organizations/model"
	scheduleSvc "ritmo_backend/internals/features/school/group_schedules/service"
	groupModel "ritmo_backend/internals/features/school/groups/model"
	studentModel "ritmo_backend/internals/features/school/students/model"
	teacherModel "ritmo_backend/internals/features/school/teachers/model"
	venueModel "ritmo_backend/internals/features/school/venues/model"
	userModel "ritmo_backend/internals/features/users/auth/model"
	"ritmo_backend/internals/constants"
	"ritmo_backend/internals/helpers/timeplan"
)

const demoSlug = "estudio-ritmo"

// SeedDemoSchool creates one demo school with an owner login
// (owner@ritmo.dev / ritmo123), a teacher, a venue, a weekly group with
// three enrolled students, and an open schedule version. Idempotent: a
// second run finds the slug and leaves everything alone.
func SeedDemoSchool(db *gorm.DB) error {
	var existing orgModel.OrganizationModel
	err := db.Where("organizations_slug = ?", demoSlug).Take(&existing).Error
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		hash, err := bcrypt.GenerateFromPassword([]byte("ritmo123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		owner := userModel.UserModel{
			UsersFullName:     "Demo Owner",
			UsersEmail:        "owner@ritmo.dev",
			UsersPasswordHash: string(hash),
		}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}

		org := orgModel.OrganizationModel{
			OrganizationsName:     "Estudio Ritmo",
			OrganizationsSlug:     demoSlug,
			OrganizationsSettings: datatypes.JSON([]byte(`{"timezone":"Europe/Madrid","locale":"es"}`)),
		}
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		member := orgModel.OrganizationMemberModel{
			OrganizationMembersOrgID:  org.OrganizationsID,
			OrganizationMembersUserID: owner.UsersID,
			OrganizationMembersRole:   constants.RoleOwner,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		teacher := teacherModel.TeacherModel{
			TeachersOrgID:    org.OrganizationsID,
			TeachersFullName: "Lucía Fernández",
		}
		if err := tx.Create(&teacher).Error; err != nil {
			return err
		}
		venue := venueModel.VenueModel{
			VenuesOrgID: org.OrganizationsID,
			VenuesName:  "Sala Principal",
		}
		if err := tx.Create(&venue).Error; err != nil {
			return err
		}

		group := groupModel.GroupModel{
			GroupsOrgID:     org.OrganizationsID,
			GroupsName:      "Salsa Beginners",
			GroupsTeacherID: &teacher.TeachersID,
			GroupsVenueID:   &venue.VenuesID,
		}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		monthStart := timeplan.DateOnly{}
		{
			today := timeplan.Today()
			monthStart = timeplan.NewDate(today.Year(), today.Month(), 1)
		}
		for _, name := range []string{"Ana García", "Marco Ruiz", "Sofia Blanco"} {
			student := studentModel.StudentModel{
				StudentsOrgID:    org.OrganizationsID,
				StudentsFullName: name,
			}
			if err := tx.Create(&student).Error; err != nil {
				return err
			}
			enrollment := groupModel.EnrollmentModel{
				EnrollmentsOrgID:     org.OrganizationsID,
				EnrollmentsGroupID:   group.GroupsID,
				EnrollmentsStudentID: student.StudentsID,
				EnrollmentsStartDate: monthStart,
			}
			if err := tx.Create(&enrollment).Error; err != nil {
				return err
			}
		}

		svc := scheduleSvc.New(tx)
		_, err = svc.UpsertSchedule(scheduleSvc.UpsertScheduleInput{
			GroupID:           group.GroupsID,
			OrgID:             org.OrganizationsID,
			Recurrence:        "weekly",
			DurationHours:     1.5,
			EffectiveFrom:     &monthStart,
			ApplyToFutureOnly: true,
			Slots:             []scheduleSvc.SlotSpec{{DayOfWeek: 3, StartTime: "19:00"}},
		})
		return err
	})
}
