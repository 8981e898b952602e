package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/features/payments/controller"
)

// PaymentRoutes => endpoint pembayaran + upload bukti transfer
func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	paymentCtrl := controller.NewPaymentController(db)
	payment := api.Group("/payment")
	payment.Get("/", paymentCtrl.GetPayment)
	payment.Post("/", paymentCtrl.CreatePayment)
	payment.Put("/", paymentCtrl.UpdatePayment)

	uploadCtrl := controller.NewUploadPaymentController(db)
	api.Post("/upload-payment", uploadCtrl.UploadProof)
}
