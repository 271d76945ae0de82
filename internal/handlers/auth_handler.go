package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/besteffort"
	"github.com/eclipse7-9/enlistment-layout/internal/codes"
	"github.com/eclipse7-9/enlistment-layout/internal/config"
	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/mailer"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	codes  codes.Store
	mail   mailer.Mailer
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, store codes.Store, mail mailer.Mailer) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		codes:  store,
		mail:   mail,
	}
}

// --------- Requests ---------

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	LastName string `json:"last_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`

	Role     string `json:"role"`
	RegionID uint   `json:"region_id"`
	CityID   uint   `json:"city_id"`

	// Clave especial para registrar cuentas admin o courier.
	AccessKey string `json:"access_key"`
}

type RegisterSupplierRequest struct {
	CompanyName    string `json:"company_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	ContactAddress string `json:"contact_address" binding:"required"`
	Password       string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type RecoverPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}

	switch role {
	case models.RoleClient, models.RoleProvider:
	case models.RoleAdmin:
		if req.AccessKey != h.config.AdminKey {
			httperr.Forbidden(c, "invalid_access_key", "Clave de acceso inválida para el rol solicitado.")
			return
		}
	case models.RoleCourier:
		if req.AccessKey != h.config.CourierKey {
			httperr.Forbidden(c, "invalid_access_key", "Clave de acceso inválida para el rol solicitado.")
			return
		}
	default:
		httperr.BadRequest(c, "invalid_role", "Rol desconocido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "Ya existe una cuenta con ese correo.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "No se pudo procesar la contraseña.")
		return
	}

	user := models.User{
		Name:         req.Name,
		LastName:     req.LastName,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		Role:         role,
		Status:       models.UserActive,
		RegionID:     req.RegionID,
		CityID:       req.CityID,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "No se pudo crear la cuenta.")
		return
	}

	// El correo de verificación nunca bloquea el registro.
	besteffort.Do("verification email", func() error {
		return h.sendCode(c, email, mailer.VerificationBody)
	})

	token, err := h.generateToken(email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No se pudo generar el token.")
		return
	}

	c.JSON(201, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) RegisterSupplier(c *gin.Context) {
	var req RegisterSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	var count int64
	h.db.Model(&models.Supplier{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "Ya existe una cuenta con ese correo.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "No se pudo procesar la contraseña.")
		return
	}

	supplier := models.Supplier{
		CompanyName:    req.CompanyName,
		Email:          email,
		Phone:          req.Phone,
		ContactAddress: req.ContactAddress,
		PasswordHash:   string(hashed),
		Status:         "active",
	}

	if err := h.db.Create(&supplier).Error; err != nil {
		httperr.Internal(c, "failed_to_create_supplier", "No se pudo crear la cuenta.")
		return
	}

	token, err := h.generateToken(email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No se pudo generar el token.")
		return
	}

	c.JSON(201, gin.H{
		"supplier": supplier,
		"token":    token,
	})
}

// Login resuelve la cuenta por correo: primero usuarios, luego
// proveedores de productos.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err == nil {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			httperr.Unauthorized(c, "invalid_credentials", "Correo o contraseña incorrectos.")
			return
		}
		if user.Status != models.UserActive {
			httperr.Forbidden(c, "inactive_account", "Tu cuenta está desactivada.")
			return
		}

		token, err := h.generateToken(email)
		if err != nil {
			httperr.Internal(c, "failed_to_generate_token", "No se pudo generar el token.")
			return
		}

		c.JSON(200, gin.H{"user": user, "token": token})
		return
	}

	var supplier models.Supplier
	if err := h.db.Where("email = ?", email).First(&supplier).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Correo o contraseña incorrectos.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(supplier.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Correo o contraseña incorrectos.")
		return
	}

	token, err := h.generateToken(email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No se pudo generar el token.")
		return
	}

	c.JSON(200, gin.H{"supplier": supplier, "token": token})
}

// --------- Códigos de verificación y recuperación ---------

func (h *AuthHandler) SendVerificationCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.sendCode(c, email, mailer.VerificationBody); err != nil {
		httperr.Internal(c, "failed_to_send_code", "No se pudo enviar el código.")
		return
	}

	c.JSON(200, gin.H{"message": "Código enviado. Revisa tu correo."})
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.consumeCode(c, email, req.Code) {
		return
	}

	c.JSON(200, gin.H{"message": "Correo verificado correctamente."})
}

func (h *AuthHandler) SendRecoveryCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Solo cuentas existentes reciben código de recuperación.
	if !h.accountExists(email) {
		httperr.NotFound(c, "account_not_found", "No existe una cuenta con ese correo.")
		return
	}

	if err := h.sendCode(c, email, mailer.RecoveryBody); err != nil {
		httperr.Internal(c, "failed_to_send_code", "No se pudo enviar el código.")
		return
	}

	c.JSON(200, gin.H{"message": "Código enviado. Revisa tu correo."})
}

func (h *AuthHandler) RecoverPassword(c *gin.Context) {
	var req RecoverPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.consumeCode(c, email, req.Code) {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "No se pudo procesar la contraseña.")
		return
	}

	res := h.db.Model(&models.User{}).Where("email = ?", email).Update("password_hash", string(hashed))
	if res.Error == nil && res.RowsAffected > 0 {
		c.JSON(200, gin.H{"message": "Contraseña actualizada correctamente."})
		return
	}

	res = h.db.Model(&models.Supplier{}).Where("email = ?", email).Update("password_hash", string(hashed))
	if res.Error != nil || res.RowsAffected == 0 {
		httperr.NotFound(c, "account_not_found", "No existe una cuenta con ese correo.")
		return
	}

	c.JSON(200, gin.H{"message": "Contraseña actualizada correctamente."})
}

// --------- Helpers ---------

func (h *AuthHandler) accountExists(email string) bool {
	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return true
	}
	h.db.Model(&models.Supplier{}).Where("email = ?", email).Count(&count)
	return count > 0
}

func (h *AuthHandler) sendCode(c *gin.Context, email string, body func(string) (string, string)) error {
	code := codes.Generate()

	if err := h.codes.Set(c.Request.Context(), email, code, codes.TTL); err != nil {
		return err
	}

	subject, html := body(code)
	return h.mail.Send(email, subject, html)
}

func (h *AuthHandler) consumeCode(c *gin.Context, email, code string) bool {
	switch err := h.codes.Consume(c.Request.Context(), email, code); err {
	case nil:
		return true
	case codes.ErrNoCode:
		httperr.NotFound(c, "code_not_found", "No hay un código pendiente para ese correo.")
	case codes.ErrExpired:
		httperr.BadRequest(c, "code_expired", "El código expiró. Solicita uno nuevo.")
	case codes.ErrBadCode:
		httperr.BadRequest(c, "code_mismatch", "El código no es correcto.")
	default:
		httperr.Internal(c, "code_store_error", "No se pudo validar el código.")
	}
	return false
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
