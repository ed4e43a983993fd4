package upload_test

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/julienschmidt/httprouter"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/shearwater-tools/cutter/internal/upload"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

var _ = Describe("uploading to Artifactory", func() {
	const (
		correctUsername = "kim"
		correctPassword = "mango_rice!"
	)

	var (
		destination       *upload.ArtifactoryDestination
		config            freight.PublishDestination
		server            *httptest.Server
		artifactoryRouter *httprouter.Router
		logger            *log.Logger

		receivedBody     []byte
		receivedChecksum string
		receivedPaths    []string

		artifactDir string
		artifact    upload.Artifact
	)

	BeforeEach(func() {
		config = freight.PublishDestination{
			Type:         freight.PublishDestinationTypeArtifactory,
			ID:           "some-mango-tree",
			Repo:         "basket",
			Username:     correctUsername,
			Password:     correctPassword,
			PathTemplate: "fixie/{{.Version}}/{{.Name}}",
		}
		receivedBody = nil
		receivedChecksum = ""
		receivedPaths = nil

		artifactoryRouter = httprouter.New()
		artifactoryRouter.Handler(http.MethodPut, "/artifactory/basket/fixie/:version/:name",
			applyMiddleware(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				body, err := io.ReadAll(req.Body)
				Expect(err).NotTo(HaveOccurred())
				receivedBody = body
				receivedChecksum = req.Header.Get("X-Checksum-Sha256")
				receivedPaths = append(receivedPaths, req.URL.Path)
				res.WriteHeader(http.StatusCreated)
			}), requireBasicAuthMiddleware(correctUsername, correctPassword)))

		artifactDir = must(os.MkdirTemp("", "artifacts"))
		artifactPath := filepath.Join(artifactDir, "fixie-data-0.1.0.tar.gz")
		Expect(os.WriteFile(artifactPath, []byte("tarball-bytes"), 0o644)).To(Succeed())
		artifact = upload.Artifact{
			Project: "fixie-data",
			Owner:   "shearwater-tools",
			Version: "0.1.0",
			Name:    "fixie-data-0.1.0.tar.gz",
			Path:    artifactPath,
			SHA256:  "9946fe66ac2ea0bcf693bafde3caa98e5760726dfc5298f2a8530a4d528a67f1",
			Size:    int64(len("tarball-bytes")),
		}
		logger = log.New(GinkgoWriter, "", 0)
	})

	JustBeforeEach(func() {
		server = httptest.NewServer(artifactoryRouter)
		config.Host = server.URL
		destination = &upload.ArtifactoryDestination{Config: config, Client: server.Client()}
	})

	AfterEach(func() {
		server.Close()
		_ = os.RemoveAll(artifactDir)
	})

	It("PUTs the artifact at the rendered repository path", func() {
		location, err := destination.Upload(context.Background(), logger, artifact)
		Expect(err).NotTo(HaveOccurred())
		Expect(location).To(Equal(server.URL + "/artifactory/basket/fixie/0.1.0/fixie-data-0.1.0.tar.gz"))
		Expect(receivedPaths).To(Equal([]string{"/artifactory/basket/fixie/0.1.0/fixie-data-0.1.0.tar.gz"}))
		Expect(string(receivedBody)).To(Equal("tarball-bytes"))
		Expect(receivedChecksum).To(Equal(artifact.SHA256))
	})

	When("the credentials are rejected", func() {
		BeforeEach(func() {
			config.Password = "guess_again"
		})

		It("returns an error with the response status", func() {
			_, err := destination.Upload(context.Background(), logger, artifact)
			Expect(err).To(MatchError(ContainSubstring("401")))
		})
	})

	When("the path template references an unknown field", func() {
		BeforeEach(func() {
			config.PathTemplate = "fixie/{{.Nope}}"
		})

		It("returns an error", func() {
			_, err := destination.Upload(context.Background(), logger, artifact)
			Expect(err).To(MatchError(ContainSubstring("unable to evaluate path_template")))
		})
	})

	When("the host is unreachable", func() {
		It("returns the transport error", func() {
			destination.Client = &http.Client{Transport: dnsFailure{}}
			_, err := destination.Upload(context.Background(), logger, artifact)
			Expect(err).To(MatchError(ContainSubstring("no such host")))
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
		It("prefers the configured identifier and falls back to the repo", func() {
			Expect(destination.ID()).To(Equal("some-mango-tree"))
			destination.Config.ID = ""
			Expect(destination.ID()).To(Equal("basket"))
		})
	})
})

func requireBasicAuthMiddleware(expectedUsername, expectedPassword string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			username, password, ok := req.BasicAuth()
			if !ok {
				http.Error(res, "auth not set", http.StatusUnauthorized)
				return
			}
			if expectedUsername != username {
				http.Error(res, "username does not match", http.StatusUnauthorized)
				return
			}
			if expectedPassword != password {
				http.Error(res, "password does not match", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(res, req)
		})
	}
}

func applyMiddleware(endpoint http.Handler, middleware ...func(http.Handler) http.Handler) http.Handler {
	h := endpoint
	for _, mw := range middleware {
		h = mw(h)
	}
	return h
}

type dnsFailure struct{}

func (dnsFailure) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, &net.DNSError{Err: "no such host"}
}

func must[T any](value T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return value
}
