package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/nandemo-ya/awscmdlet/internal/config"
)

var _ = Describe("Config", func() {
	var tempDir string

	BeforeEach(func() {
		config.ResetConfig()
		tempDir = GinkgoT().TempDir()
		for _, env := range []string{"AWS_REGION", "AWS_DEFAULT_REGION", "AWS_PROFILE", "AWS_ENDPOINT_URL", "AWS_MAX_ATTEMPTS"} {
			GinkgoT().Setenv(env, "")
			Expect(os.Unsetenv(env)).To(Succeed())
		}
	})

	AfterEach(func() {
		config.ResetConfig()
	})

	Describe("LoadConfig", func() {
		Context("when no path is given", func() {
			It("should return the defaults", func() {
				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("us-east-1"))
				Expect(cfg.AWS.MaxAttempts).To(Equal(3))
				Expect(cfg.AWS.Timeout).To(Equal(30 * time.Second))
				Expect(cfg.Output.Format).To(Equal("json"))
				Expect(cfg.Log.Level).To(Equal("warn"))
				Expect(cfg.Invocation.Lenient).To(BeFalse())
				Expect(cfg.Validate()).To(Succeed())
			})
		})

		Context("when the file does not exist", func() {
			It("should return an error", func() {
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.yaml"))
				Expect(err).To(MatchError(ContainSubstring("does not exist")))
			})
		})

		Context("when the file exists", func() {
			It("should load configuration from file", func() {
				path := filepath.Join(tempDir, "awscmdlet.yaml")
				content := `
aws:
  region: eu-west-1
  endpoint: http://localhost:4566
  maxAttempts: 5
  timeout: 10s
output:
  format: yaml
invocation:
  noAutoIteration: true
`
				Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

				cfg, err := config.LoadConfig(path)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("eu-west-1"))
				Expect(cfg.AWS.Endpoint).To(Equal("http://localhost:4566"))
				Expect(cfg.AWS.MaxAttempts).To(Equal(5))
				Expect(cfg.AWS.Timeout).To(Equal(10 * time.Second))
				Expect(cfg.Output.Format).To(Equal("yaml"))
				Expect(cfg.Invocation.NoAutoIteration).To(BeTrue())
				Expect(cfg.Log.Format).To(Equal("text"))
			})
		})

		Context("when environment variables are set", func() {
			It("should prefer the prefixed variable over the SDK one", func() {
				GinkgoT().Setenv("AWS_REGION", "ap-northeast-1")
				GinkgoT().Setenv("AWSCMDLET_OUTPUT_FORMAT", "yaml")

				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("ap-northeast-1"))
				Expect(cfg.Output.Format).To(Equal("yaml"))

				config.ResetConfig()
				GinkgoT().Setenv("AWSCMDLET_AWS_REGION", "us-west-2")
				cfg, err = config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("us-west-2"))
			})
		})
	})

	Describe("GetConfig", func() {
		It("should return the loaded configuration", func() {
			loaded, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())
			Expect(config.GetConfig()).To(BeIdenticalTo(loaded))
		})

		It("should load the defaults when nothing was loaded yet", func() {
			cfg := config.GetConfig()
			Expect(cfg.AWS.Region).To(Equal("us-east-1"))
			Expect(cfg.Output.Format).To(Equal("json"))
		})
	})

	Describe("BindFlag", func() {
		It("should let a changed flag override the file", func() {
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.String("region", "", "")
			Expect(config.BindFlag("aws.region", flags.Lookup("region"))).To(Succeed())
			Expect(flags.Parse([]string{"--region", "sa-east-1"})).To(Succeed())

			cfg, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.AWS.Region).To(Equal("sa-east-1"))
		})

		It("should reject a missing flag", func() {
			Expect(config.BindFlag("aws.region", nil)).NotTo(Succeed())
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			var err error
			cfg, err = config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an unknown output format", func() {
			cfg.Output.Format = "xml"
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("output format")))
		})

		It("should accept verbose as a log level", func() {
			cfg.Log.Level = "Verbose"
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject half of a static key pair", func() {
			cfg.AWS.AccessKeyID = "AKID"
			Expect(cfg.Validate()).NotTo(Succeed())
		})
	})

	Describe("ClientConfig", func() {
		It("should carry the AWS section", func() {
			cfg := &config.Config{AWS: config.AWSConfig{Region: "eu-central-1", Endpoint: "http://localhost:4566", MaxAttempts: 2}}
			client := cfg.ClientConfig()
			Expect(client.Region).To(Equal("eu-central-1"))
			Expect(client.Endpoint).To(Equal("http://localhost:4566"))
			Expect(client.MaxAttempts).To(Equal(2))
		})
	})
})
