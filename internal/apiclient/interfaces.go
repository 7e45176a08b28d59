package apiclient

import (
	"context"

	"github.com/practiceos/console/internal/model"
)

// PracticeAPI covers the practice profile resource.
type PracticeAPI interface {
	GetCurrentPractice(ctx context.Context, token string) (*model.PracticeRecord, error)
	CreatePractice(ctx context.Context, token string, record *model.PracticeRecord) (*model.PracticeRecord, error)
	UpdatePractice(ctx context.Context, token string, record *model.PracticeRecord) (*model.PracticeRecord, error)
}

// PractitionerAPI covers practitioners and their availability sub-resource.
type PractitionerAPI interface {
	ListPractitioners(ctx context.Context, token string) ([]*model.Practitioner, error)
	CreatePractitioner(ctx context.Context, token string, record *model.Practitioner) (*model.Practitioner, error)
	UpdatePractitioner(ctx context.Context, token, practitionerUUID string, record *model.Practitioner) (*model.Practitioner, error)
	ListAvailability(ctx context.Context, token, practitionerUUID string) ([]*model.AvailabilitySlot, error)
	CreateAvailability(ctx context.Context, token, practitionerUUID string, slot CreateAvailabilityRequest) error
}

// MemberAPI covers practice staff membership.
type MemberAPI interface {
	ListMembers(ctx context.Context, token string) ([]*model.PracticeMember, error)
	AddMember(ctx context.Context, token string, req *model.AddMemberRequest) error
	EditMember(ctx context.Context, token, memberEmail string, req *model.EditMemberRequest) error
}

// AppointmentTypeAPI covers consultation type configuration.
type AppointmentTypeAPI interface {
	ListAppointmentTypes(ctx context.Context, token string) ([]*model.AppointmentType, error)
	CreateAppointmentType(ctx context.Context, token string, req *model.CreateAppointmentTypeRequest) error
}

// BookingAPI covers the patient-facing booking endpoints. These are public:
// no token is attached.
type BookingAPI interface {
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
	ListDoctorAvailability(ctx context.Context, doctorID int, includeBooked bool) ([]*model.BookingSlot, error)
	CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
}

// DirectoryAPI covers the patient-facing practice directory.
type DirectoryAPI interface {
	ListPractices(ctx context.Context) ([]*model.PracticeListing, error)
	GetPractice(ctx context.Context, practiceUUID string) (*model.PracticeRecord, error)
}

// AuthAPI proxies login/registration for practice users and patients.
type AuthAPI interface {
	PracticeLogin(ctx context.Context, req *model.LoginRequest) (*model.AuthResult, error)
	PracticeRegister(ctx context.Context, req *model.RegisterRequest) (*model.AuthResult, error)
	PatientLogin(ctx context.Context, req *model.LoginRequest) (*model.AuthResult, error)
	PatientRegister(ctx context.Context, req *model.RegisterRequest) (*model.AuthResult, error)
}
