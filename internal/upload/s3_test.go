package upload_test

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/shearwater-tools/cutter/internal/upload"
	"github.com/shearwater-tools/cutter/internal/upload/fakes"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

var _ = Describe("uploading to S3", func() {
	var (
		destination *upload.S3Destination
		uploader    *fakes.S3Uploader
		logger      *log.Logger

		artifactDir string
		artifact    upload.Artifact
	)

	BeforeEach(func() {
		uploader = new(fakes.S3Uploader)
		destination = &upload.S3Destination{
			Config: freight.PublishDestination{
				Type:   freight.PublishDestinationTypeS3,
				Bucket: "releases",
				Region: "us-west-1",
			},
		}
		destination.Collaborators.S3Uploader = uploader
		logger = log.New(GinkgoWriter, "", 0)

		artifactDir = must(os.MkdirTemp("", "artifacts"))
		artifactPath := filepath.Join(artifactDir, "fixie-data-0.1.0.tar.gz")
		Expect(os.WriteFile(artifactPath, []byte("tarball-bytes"), 0o644)).To(Succeed())
		artifact = upload.Artifact{
			Project: "fixie-data",
			Owner:   "shearwater-tools",
			Version: "0.1.0",
			Name:    "fixie-data-0.1.0.tar.gz",
			Path:    artifactPath,
			Size:    int64(len("tarball-bytes")),
		}
	})

	AfterEach(func() {
		_ = os.RemoveAll(artifactDir)
	})

	It("puts the object under the artifact name by default", func() {
		var uploadedBody []byte
		uploader.PutObjectCalls(func(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			body, err := io.ReadAll(input.Body)
			uploadedBody = body
			return &s3.PutObjectOutput{}, err
		})

		location, err := destination.Upload(context.Background(), logger, artifact)
		Expect(err).NotTo(HaveOccurred())
		Expect(location).To(Equal("s3://releases/fixie-data-0.1.0.tar.gz"))

		Expect(uploader.PutObjectCallCount()).To(Equal(1))
		_, input, _ := uploader.PutObjectArgsForCall(0)
		Expect(*input.Bucket).To(Equal("releases"))
		Expect(*input.Key).To(Equal("fixie-data-0.1.0.tar.gz"))
		Expect(string(uploadedBody)).To(Equal("tarball-bytes"))
	})

	When("a path template is configured", func() {
		BeforeEach(func() {
			destination.Config.PathTemplate = "packages/{{.Project}}/{{.Version}}/{{.Name}}"
		})

		It("renders the object key from it", func() {
			location, err := destination.Upload(context.Background(), logger, artifact)
			Expect(err).NotTo(HaveOccurred())
			Expect(location).To(Equal("s3://releases/packages/fixie-data/0.1.0/fixie-data-0.1.0.tar.gz"))

			_, input, _ := uploader.PutObjectArgsForCall(0)
			Expect(*input.Key).To(Equal("packages/fixie-data/0.1.0/fixie-data-0.1.0.tar.gz"))
		})
	})

	When("the path template references an unknown field", func() {
		BeforeEach(func() {
			destination.Config.PathTemplate = "packages/{{.Nope}}"
		})

		It("returns an error", func() {
			_, err := destination.Upload(context.Background(), logger, artifact)
			Expect(err).To(MatchError(ContainSubstring("unable to evaluate path_template")))
			Expect(uploader.PutObjectCallCount()).To(Equal(0))
		})
	})

	When("the put fails", func() {
		BeforeEach(func() {
			uploader.PutObjectReturns(nil, errors.New("access denied"))
		})

		It("wraps the error with the bucket name", func() {
			_, err := destination.Upload(context.Background(), logger, artifact)
			Expect(err).To(MatchError(ContainSubstring(`s3 bucket "releases"`)))
			Expect(err).To(MatchError(ContainSubstring("access denied")))
		})
	})

	When("the artifact file is missing", func() {
		It("returns an error naming the path", func() {
			artifact.Path = filepath.Join(artifactDir, "never-built.tar.gz")
			_, err := destination.Upload(context.Background(), logger, artifact)
			Expect(err).To(MatchError(ContainSubstring("failed to open artifact")))
		})
	})

	Describe("ID", func() {
		It("falls back to the bucket name", func() {
			Expect(destination.ID()).To(Equal("releases"))
		})

		It("prefers the configured identifier", func() {
			destination.Config.ID = "primary-mirror"
			Expect(destination.ID()).To(Equal("primary-mirror"))
		})
	})

	Describe("Type", func() {
		It("is s3", func() {
			Expect(destination.Type()).To(Equal("s3"))
		})
	})
})
