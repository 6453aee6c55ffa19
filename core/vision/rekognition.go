package vision

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"fridge-manager/core/imaging"
)

// labelsAPI is the slice of the Rekognition client this backend calls.
type labelsAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// RekognitionDetector runs detection through the AWS Rekognition service.
type RekognitionDetector struct {
	cfg   Config
	api   labelsAPI
	creds aws.CredentialsProvider
}

// NewRekognitionDetector resolves AWS credentials from the default chain.
func NewRekognitionDetector(ctx context.Context, cfg Config) (*RekognitionDetector, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return &RekognitionDetector{
		cfg:   cfg,
		api:   rekognition.NewFromConfig(awsCfg),
		creds: awsCfg.Credentials,
	}, nil
}

// Detect sends the frame bytes to DetectLabels and maps instances to boxes.
// Labels without instances describe the whole frame, so they get a frame-sized
// box rather than being dropped.
func (d *RekognitionDetector) Detect(ctx context.Context, frame *imaging.Frame) ([]Detection, error) {
	input := &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: frame.Bytes},
		MaxLabels:     aws.Int32(int32(d.cfg.MaxLabels)),
		MinConfidence: aws.Float32(float32(d.cfg.MinConfidence * 100)),
	}

	out, err := d.api.DetectLabels(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}

	detections := make([]Detection, 0, len(out.Labels))
	for _, label := range out.Labels {
		name := aws.ToString(label.Name)
		if name == "" {
			continue
		}

		if len(label.Instances) == 0 {
			detections = append(detections, Detection{
				Label:      name,
				Confidence: float64(aws.ToFloat32(label.Confidence)) / 100,
				Box:        imaging.Box{X: 0, Y: 0, W: frame.Width, H: frame.Height},
			})
			continue
		}

		for _, inst := range label.Instances {
			detections = append(detections, Detection{
				Label:      name,
				Confidence: float64(aws.ToFloat32(inst.Confidence)) / 100,
				Box:        scaleBoundingBox(inst.BoundingBox, frame.Width, frame.Height),
			})
		}
	}

	return filterByConfidence(detections, d.cfg.MinConfidence), nil
}

// Health verifies that credentials can still be resolved.
func (d *RekognitionDetector) Health(ctx context.Context) error {
	if _, err := d.creds.Retrieve(ctx); err != nil {
		return fmt.Errorf("resolving aws credentials: %w", err)
	}
	return nil
}

// scaleBoundingBox converts Rekognition's ratio coordinates to pixels.
func scaleBoundingBox(bb *types.BoundingBox, width, height int) imaging.Box {
	if bb == nil {
		return imaging.Box{X: 0, Y: 0, W: width, H: height}
	}
	return imaging.Box{
		X: int(aws.ToFloat32(bb.Left) * float32(width)),
		Y: int(aws.ToFloat32(bb.Top) * float32(height)),
		W: int(aws.ToFloat32(bb.Width) * float32(width)),
		H: int(aws.ToFloat32(bb.Height) * float32(height)),
	}
}
