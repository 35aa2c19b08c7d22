package binding_test

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/aws/smithy-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

func ctx() context.Context {
	return context.Background()
}

type traceRecord struct {
	service, operation, endpoint string
}

type recordingTracer struct {
	lines []traceRecord
}

func (t *recordingTracer) Trace(service, operation, endpoint string) {
	t.lines = append(t.lines, traceRecord{service, operation, endpoint})
}

var _ = Describe("Invoker", func() {
	var (
		fake   *fakeWidgets
		op     *binding.Operation[widgetParams, listWidgetsRequest, listWidgetsResponse]
		tracer *recordingTracer
		inputs binding.Inputs
	)

	BeforeEach(func() {
		fake = &fakeWidgets{pages: map[string]*listWidgetsResponse{
			"":   {Items: []string{"a", "b"}, NextToken: strPtr("p2")},
			"p2": {Items: []string{"c"}, NextToken: strPtr("p3")},
			"p3": {Items: []string{"d"}},
		}}
		op = listWidgets(fake)
		tracer = &recordingTracer{}
		inputs = binding.Inputs{"Owner": "me"}
	})

	It("should trace exactly once before dispatch", func() {
		out := op.Execute(ctx(), inputs, tracer)
		Expect(out.OK()).To(BeTrue())
		Expect(tracer.lines).To(Equal([]traceRecord{{"Widget Service", "ListWidgets", "https://widgets.us-east-1.amazonaws.com"}}))
	})

	It("should identify each invocation", func() {
		first := op.Execute(ctx(), inputs, tracer)
		second := op.Execute(ctx(), inputs, tracer)
		Expect(first.Invocation.ID).NotTo(BeEmpty())
		Expect(first.Invocation.ID).NotTo(Equal(second.Invocation.ID))
		Expect(first.Invocation.Operation).To(Equal("ListWidgets"))
	})

	Describe("pagination", func() {
		It("should follow continuation tokens and concatenate items", func() {
			out := op.Execute(ctx(), inputs, tracer)
			Expect(out.Value).To(Equal([]string{"a", "b", "c", "d"}))
			Expect(out.Responses).To(HaveLen(3))
			Expect(fake.requests).To(HaveLen(3))
			Expect(fake.requests[0].NextToken).To(BeNil())
			Expect(fake.requests[1].NextToken).To(HaveValue(Equal("p2")))
			Expect(fake.requests[2].NextToken).To(HaveValue(Equal("p3")))
		})

		It("should not modify raw response pages while merging", func() {
			out := op.Execute(ctx(), inputs, tracer)
			Expect(out.Responses[0].Items).To(Equal([]string{"a", "b"}))
		})

		It("should fetch a single page with NoAutoIteration", func() {
			inputs["NoAutoIteration"] = true
			out := op.Execute(ctx(), inputs, tracer)
			Expect(out.Value).To(Equal([]string{"a", "b"}))
			Expect(fake.requests).To(HaveLen(1))
		})

		It("should fetch only the page named by an explicit token", func() {
			inputs["NextToken"] = "p2"
			out := op.Execute(ctx(), inputs, tracer)
			Expect(out.Value).To(Equal([]string{"c"}))
			Expect(fake.requests).To(HaveLen(1))
		})

		It("should stop when the service repeats a token", func() {
			fake.pages["p3"] = &listWidgetsResponse{Items: []string{"d"}, NextToken: strPtr("p2")}
			out := op.Execute(ctx(), inputs, tracer)
			Expect(out.Kind).To(Equal(binding.OutcomeFailed))
			Expect(out.Err).To(MatchError(ContainSubstring("twice")))
		})
	})

	Describe("failures", func() {
		It("should not dispatch when cancelled beforehand", func() {
			cctx, cancel := context.WithCancel(ctx())
			cancel()

			out := op.Execute(cctx, inputs, tracer)
			Expect(out.Kind).To(Equal(binding.OutcomeCancelled))
			Expect(out.Err).To(MatchError(binding.ErrCancelled))
			Expect(fake.requests).To(BeEmpty())
			Expect(tracer.lines).To(BeEmpty())
		})

		It("should report cancellation during the call", func() {
			fake.block = true
			cctx, cancel := context.WithCancel(ctx())
			go func() {
				time.Sleep(20 * time.Millisecond)
				cancel()
			}()

			out := op.Execute(cctx, inputs, tracer)
			Expect(out.Kind).To(Equal(binding.OutcomeCancelled))
			Expect(errors.Is(out.Err, context.Canceled)).To(BeTrue())
			Expect(fake.requests).To(HaveLen(1))
		})

		It("should rewrite name resolution failures with the endpoint", func() {
			dnsErr := &net.DNSError{Err: "no such host", Name: "widgets.us-east-1.amazonaws.com", IsNotFound: true}
			fake.err = &net.OpError{Op: "dial", Net: "tcp", Err: dnsErr}

			out := op.Execute(ctx(), inputs, tracer)
			Expect(out.Kind).To(Equal(binding.OutcomeTransportResolutionFailure))

			var resolution *binding.TransportResolutionFailureError
			Expect(errors.As(out.Err, &resolution)).To(BeTrue())
			Expect(out.Err.Error()).To(ContainSubstring("https://widgets.us-east-1.amazonaws.com"))
			Expect(out.Err.Error()).To(ContainSubstring("no such host"))
			Expect(errors.Is(out.Err, dnsErr)).To(BeTrue())
		})

		It("should pass service errors through unchanged", func() {
			apiErr := &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "no widget"}
			fake.err = apiErr

			out := op.Execute(ctx(), inputs, tracer)
			Expect(out.Kind).To(Equal(binding.OutcomeServiceError))
			Expect(out.Err).To(BeIdenticalTo(apiErr))
		})

		It("should report other transport errors as failed", func() {
			fake.err = errors.New("connection reset by peer")
			out := op.Execute(ctx(), inputs, tracer)
			Expect(out.Kind).To(Equal(binding.OutcomeFailed))
			Expect(out.Value).To(BeNil())
		})
	})
})
