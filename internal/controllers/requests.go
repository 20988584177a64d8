package controllers

import (
	"fleetadmin/internal/geo"
	"fleetadmin/internal/models"
	"fleetadmin/internal/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var loginMessages = fieldMessages{
	"email":    msgEmail,
	"password": msgPass,
}

type identityRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,max=72"`
}

var identityMessages = fieldMessages{
	"email":    msgEmail,
	"name":     msgName,
	"password": msgPass,
}

func (r identityRequest) toInput() services.IdentityInput {
	return services.IdentityInput{Email: r.Email, Name: r.Name, Password: r.Password}
}

type driverRequest struct {
	Personal struct {
		FullName      string        `json:"fullName" binding:"required"`
		Contact       numericString `json:"contact" binding:"required,numeric"`
		Location      string        `json:"location" binding:"required"`
		Gender        string        `json:"gender" binding:"required"`
		Age           int           `json:"age" binding:"required,gt=0"`
		LicenseNumber string        `json:"licenseNumber" binding:"required"`
		Coordinates   geo.Point     `json:"coordinates"`
	} `json:"personal"`
	Pin     string `json:"pin" binding:"required,numeric,len=4"`
	Vehicle struct {
		CarModel    string `json:"carModel" binding:"required"`
		ModelYear   int    `json:"modelYear" binding:"required,gt=0"`
		PlateNumber string `json:"plateNumber" binding:"required"`
	} `json:"vehicle"`
	ResourcesInterest []string `json:"resourcesInterest" binding:"required,min=1"`
	Payment           struct {
		AmountPaid    string        `json:"amountPaid" binding:"required"`
		WeeklyPayment string        `json:"weeklyPayment" binding:"required"`
		PaymentMode   string        `json:"paymentMode" binding:"required"`
		MomoNumber    numericString `json:"momoNumber" binding:"omitempty,numeric"`
	} `json:"payment"`
	ResourcesAllocation []string `json:"resourcesAllocation" binding:"required,min=1"`
}

var driverMessages = fieldMessages{
	"personal.fullName":      msgString,
	"personal.contact":       msgNumeric,
	"personal.location":      msgString,
	"personal.gender":        msgString,
	"personal.age":           msgNumeric,
	"personal.licenseNumber": msgString,
	"personal.coordinates":   msgPoint,
	"pin":                    msgNumeric,
	"vehicle.carModel":       msgString,
	"vehicle.modelYear":      msgNumeric,
	"vehicle.plateNumber":    msgString,
	"resourcesInterest":      msgList,
	"payment.amountPaid":     msgInput,
	"payment.weeklyPayment":  msgInput,
	"payment.paymentMode":    msgString,
	"payment.momoNumber":     msgNumeric,
	"resourcesAllocation":    msgList,
}

func (r driverRequest) toInput() services.DriverInput {
	return services.DriverInput{
		Personal: models.DriverPersonal{
			FullName:      r.Personal.FullName,
			Contact:       string(r.Personal.Contact),
			Location:      r.Personal.Location,
			Gender:        r.Personal.Gender,
			Age:           r.Personal.Age,
			LicenseNumber: r.Personal.LicenseNumber,
			Coordinates:   r.Personal.Coordinates,
		},
		Pin: r.Pin,
		Vehicle: models.DriverVehicle{
			CarModel:    r.Vehicle.CarModel,
			ModelYear:   r.Vehicle.ModelYear,
			PlateNumber: r.Vehicle.PlateNumber,
		},
		ResourcesInterest: r.ResourcesInterest,
		Payment: models.DriverPayment{
			AmountPaid:    r.Payment.AmountPaid,
			WeeklyPayment: r.Payment.WeeklyPayment,
			PaymentMode:   r.Payment.PaymentMode,
			MomoNumber:    string(r.Payment.MomoNumber),
		},
		ResourcesAllocation: r.ResourcesAllocation,
	}
}

type merchantRequest struct {
	Personal struct {
		BusinessName  string        `json:"businessName" binding:"required"`
		ContactName   string        `json:"contactName" binding:"required"`
		ContactNumber numericString `json:"contactNumber" binding:"required,numeric"`
		Location      string        `json:"location" binding:"required"`
		Coordinates   geo.Point     `json:"coordinates"`
	} `json:"personal"`
	ProductDetails []string `json:"productDetails" binding:"required,min=1"`
	Payment        struct {
		PaymentMode string        `json:"paymentMode" binding:"required"`
		MomoNumber  numericString `json:"momoNumber" binding:"required,numeric"`
		AccountName string        `json:"accountName" binding:"required"`
	} `json:"payment"`
}

var merchantMessages = fieldMessages{
	"personal.businessName":  msgString,
	"personal.contactName":   msgString,
	"personal.contactNumber": msgNumeric,
	"personal.location":      msgString,
	"personal.coordinates":   msgPoint,
	"productDetails":         msgList,
	"payment.paymentMode":    msgInput,
	"payment.momoNumber":     msgNumeric,
	"payment.accountName":    msgString,
}

func (r merchantRequest) toInput() services.MerchantInput {
	return services.MerchantInput{
		Personal: models.MerchantPersonal{
			BusinessName:  r.Personal.BusinessName,
			ContactName:   r.Personal.ContactName,
			ContactNumber: string(r.Personal.ContactNumber),
			Location:      r.Personal.Location,
			Coordinates:   r.Personal.Coordinates,
		},
		ProductDetails: r.ProductDetails,
		Payment: models.MerchantPayment{
			PaymentMode: r.Payment.PaymentMode,
			MomoNumber:  string(r.Payment.MomoNumber),
			AccountName: r.Payment.AccountName,
		},
	}
}
