package services

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shaiiram/website1000-2000/config"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/google/uuid"
)

// UploadService pushes admin-uploaded experience images to Cloudinary and
// hands back the public URL. Signed uploads over plain HTTP, no SDK.
type UploadService struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	httpClient *http.Client
}

func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{
		cloudName: cfg.CloudinaryCloudName,
		apiKey:    cfg.CloudinaryAPIKey,
		apiSecret: cfg.CloudinaryAPISecret,
		folder:    cfg.CloudinaryFolder,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UploadImage reads one multipart file and returns its public URL.
func (s *UploadService) UploadImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	if s.cloudName == "" || s.apiKey == "" || s.apiSecret == "" {
		return "", fmt.Errorf("cloudinary is not configured")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %v", err)
	}

	publicID := uuid.New().String()
	if s.folder != "" {
		publicID = s.folder + "/" + publicID
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + s.cloudName + "/image/upload"
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	form := url.Values{}
	form.Add("file", "data:"+contentType(header)+";base64,"+encodeBase64(data))
	form.Add("api_key", s.apiKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)

	// Cloudinary signs the sorted non-credential params with SHA1.
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, s.apiSecret)
	form.Add("signature", fmt.Sprintf("%x", sha1.Sum([]byte(signatureString))))

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("cloudinary returned status %d: %s", resp.StatusCode, string(body))
		utils.LogError(err, "upload: cloudinary rejected")
		return "", err
	}

	var cloudRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &cloudRes); err != nil {
		return "", fmt.Errorf("failed to parse cloudinary response: %v", err)
	}
	if cloudRes.Error.Message != "" {
		return "", fmt.Errorf("cloudinary error: %s", cloudRes.Error.Message)
	}

	publicURL := cloudRes.SecureURL
	if publicURL == "" {
		publicURL = cloudRes.URL
	}
	if publicURL == "" {
		return "", fmt.Errorf("no URL in cloudinary response")
	}
	return publicURL, nil
}

func encodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "image/jpeg"
}
