package upload_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/shearwater-tools/cutter/internal/upload"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

var _ = Describe("choosing destinations", func() {
	Describe("New", func() {
		It("builds an S3 destination", func() {
			destination, err := upload.New(freight.PublishDestination{Type: "s3", Bucket: "releases"})
			Expect(err).NotTo(HaveOccurred())
			Expect(destination).To(BeAssignableToTypeOf(&upload.S3Destination{}))
			Expect(destination.Type()).To(Equal("s3"))
		})

		It("builds an Artifactory destination", func() {
			destination, err := upload.New(freight.PublishDestination{Type: "artifactory", Repo: "basket"})
			Expect(err).NotTo(HaveOccurred())
			Expect(destination).To(BeAssignableToTypeOf(&upload.ArtifactoryDestination{}))
			Expect(destination.Type()).To(Equal("artifactory"))
		})

		It("rejects unknown types", func() {
			_, err := upload.New(freight.PublishDestination{Type: "carrier-pigeon"})
			Expect(err).To(MatchError(ContainSubstring(`publish destination type "carrier-pigeon" is not supported`)))
		})
	})

	Describe("All", func() {
		It("builds one destination per configured target", func() {
			destinations, err := upload.All([]freight.PublishDestination{
				{Type: "s3", Bucket: "releases"},
				{Type: "artifactory", Repo: "basket"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(destinations).To(HaveLen(2))
			Expect(destinations[0].ID()).To(Equal("releases"))
			Expect(destinations[1].ID()).To(Equal("basket"))
		})

		It("fails when any target is misconfigured", func() {
			_, err := upload.All([]freight.PublishDestination{
				{Type: "s3", Bucket: "releases"},
				{Type: ""},
			})
			Expect(err).To(HaveOccurred())
		})
	})
})
