package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const postImageFolder = "posts"

var s3Client *s3.Client
var s3Bucket string
var s3Region string

func InitS3() error {
	s3Bucket = os.Getenv("AWS_BUCKET_NAME")
	s3Region = os.Getenv("AWS_REGION")

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(s3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("chargement config AWS: %w", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	return nil
}

// PostImageName génère un nom d'objet unique par upload. Remplacer
// l'image d'un post n'écrase donc jamais l'objet existant : l'ancien
// reste adressable jusqu'à sa suppression explicite.
func PostImageName(ext string) string {
	return fmt.Sprintf("post_%s%s", uuid.New().String(), ext)
}

// UploadPostImage envoie l'image d'un post vers S3 sous une clé fraîche
// et renvoie son URL publique.
func UploadPostImage(file multipart.File, ext string, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s", postImageFolder, PostImageName(ext))

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s3Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload échoué: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s3Bucket, s3Region, key)
	return publicURL, nil
}

func DeleteFromS3(key string) error {
	_, err := s3Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("erreur suppression S3 : %w", err)
	}
	return nil
}

// KeyFromURL retrouve la clé S3 depuis l'URL publique stockée en base
func KeyFromURL(url string) string {
	parts := strings.Split(url, ".amazonaws.com/")
	if len(parts) > 1 {
		return parts[1]
	}
	return ""
}
