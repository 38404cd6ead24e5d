package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shaiiram/website1000-2000/config"
	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleOauthConfig *oauth2.Config

func InitGoogleOAuth(cfg *config.Config) {
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  cfg.GoogleRedirect,
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleSecret,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

type UserController struct {
	RDB *redis.Client
	Cfg *config.Config
}

func NewUserController(rdb *redis.Client, cfg *config.Config) *UserController {
	return &UserController{RDB: rdb, Cfg: cfg}
}

type UserRegisterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /auth/register — first signup step, sends an email OTP.
func (uc *UserController) Register(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// Accounts are stored lowercased; the duplicate check must match.
	db := utils.GetDB()
	var userCount int64
	db.Model(&models.User{}).Where("email = ?", strings.ToLower(req.Email)).Count(&userCount)
	if userCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "משתמש עם כתובת זו כבר קיים"})
		return
	}

	redisKey := "reg:email:" + strings.ToLower(req.Email)
	if ok, msg := utils.CanSendOTP(uc.RDB, redisKey); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": msg})
		return
	}

	ctx := context.Background()
	otp := utils.GenerateOTP()
	utils.MarkOTPSent(uc.RDB, redisKey)
	uc.RDB.Set(ctx, redisKey+":otp", otp, 5*time.Minute)

	msg := fmt.Sprintf("1000-2000: קוד האימות שלך להרשמה לאתר: %s", otp)
	err := utils.SendEmail(req.Email, "1000-2000: קוד אימות", msg,
		uc.Cfg.SMTPHost, uc.Cfg.SMTPPort, uc.Cfg.SMTPUser, uc.Cfg.SMTPPass)
	if err != nil {
		utils.LogError(err, "register: send otp email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה בשליחת האימייל"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "otp sent"})
}

type ConfirmOTPRequest struct {
	Email    string `json:"email" binding:"required,email"`
	OTP      string `json:"otp" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /auth/confirm-otp — second signup step: verifies the OTP and
// creates the account.
func (uc *UserController) ConfirmOTP(c *gin.Context) {
	var req ConfirmOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := context.Background()
	redisKey := "reg:email:" + strings.ToLower(req.Email)
	storedOTP, err := uc.RDB.Get(ctx, redisKey+":otp").Result()
	if err != nil || storedOTP != req.OTP {
		c.JSON(http.StatusBadRequest, gin.H{"error": "קוד שגוי או שפג תוקפו"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה ביצירת המשתמש"})
		return
	}

	email := strings.ToLower(req.Email)
	user := models.User{
		Email:     &email,
		FullName:  req.FullName,
		Password:  hash,
		Confirmed: true,
	}
	db := utils.GetDB()
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה ביצירת המשתמש"})
		return
	}
	uc.RDB.Del(ctx, redisKey+":otp")

	token, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה ביצירת הטוקן"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "אימייל או סיסמה שגויים"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "אימייל או סיסמה שגויים"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה ביצירת הטוקן"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /auth/forgot-password
func (uc *UserController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		// Same answer whether or not the account exists.
		c.JSON(http.StatusOK, gin.H{"status": "otp sent"})
		return
	}

	redisKey := "reset:email:" + strings.ToLower(req.Email)
	if ok, msg := utils.CanSendOTP(uc.RDB, redisKey); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": msg})
		return
	}

	ctx := context.Background()
	otp := utils.GenerateOTP()
	utils.MarkOTPSent(uc.RDB, redisKey)
	uc.RDB.Set(ctx, redisKey+":otp", otp, 5*time.Minute)

	msg := fmt.Sprintf("1000-2000: קוד האימות שלך לאיפוס הסיסמה: %s", otp)
	err := utils.SendEmail(req.Email, "1000-2000: איפוס סיסמה", msg,
		uc.Cfg.SMTPHost, uc.Cfg.SMTPPort, uc.Cfg.SMTPUser, uc.Cfg.SMTPPass)
	if err != nil {
		utils.LogError(err, "forgot-password: send otp email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה בשליחת האימייל"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "otp sent"})
}

type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	OTP      string `json:"otp" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /auth/reset-password
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := context.Background()
	redisKey := "reset:email:" + strings.ToLower(req.Email)
	storedOTP, err := uc.RDB.Get(ctx, redisKey+":otp").Result()
	if err != nil || storedOTP != req.OTP {
		c.JSON(http.StatusBadRequest, gin.H{"error": "קוד שגוי או שפג תוקפו"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה בעדכון הסיסמה"})
		return
	}

	db := utils.GetDB()
	if err := db.Model(&models.User{}).Where("email = ?", strings.ToLower(req.Email)).
		Update("password", hash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה בעדכון הסיסמה"})
		return
	}
	uc.RDB.Del(ctx, redisKey+":otp")
	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

type googleUserInfo struct {
	Email string `json:"email"`
	Id    string `json:"id"`
	Name  string `json:"name"`
}

// GET /auth/login-redirect?redirect= — redirect-based login. The caller's
// return URL rides in the OAuth state so the callback can send the browser
// straight back to where checkout left off.
func (uc *UserController) GoogleLogin(c *gin.Context) {
	returnURL := c.Query("redirect")
	if returnURL == "" {
		returnURL = uc.Cfg.SiteURL
	}

	state := utils.GenerateOAuthState()
	uc.RDB.Set(context.Background(), "oauth:state:"+state, returnURL, 10*time.Minute)

	url := googleOauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusFound, url)
}

// GET /auth/google/callback
func (uc *UserController) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code not found"})
		return
	}

	ctx := context.Background()
	state := c.Query("state")
	returnURL, err := uc.RDB.Get(ctx, "oauth:state:"+state).Result()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired state"})
		return
	}
	uc.RDB.Del(ctx, "oauth:state:"+state)

	token, err := googleOauthConfig.Exchange(ctx, code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token exchange failed"})
		return
	}
	client := googleOauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo?alt=json")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to get user info"})
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to get user info"})
		return
	}

	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to decode user info"})
		return
	}
	if userInfo.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email not found in Google profile"})
		return
	}

	email := strings.ToLower(userInfo.Email)
	db := utils.GetDB()
	var user models.User
	result := db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		// First Google login creates the account on the spot.
		user = models.User{
			Email:     &email,
			FullName:  userInfo.Name,
			GoogleID:  &userInfo.Id,
			Confirmed: true,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה ביצירת המשתמש"})
			return
		}
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה ביצירת הטוקן"})
		return
	}

	// Back to where the user left off, token in the fragment.
	c.Redirect(http.StatusFound, returnURL+"#token="+jwtToken)
}
