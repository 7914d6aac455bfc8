package reporter

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/swanysimon/mdlint/pkg/runner"
)

// junitTestSuites is the root JUnit element, one suite per file.
type junitTestSuites struct {
	XMLName  xml.Name         `xml:"testsuites"`
	Name     string           `xml:"name,attr"`
	Tests    int              `xml:"tests,attr"`
	Failures int              `xml:"failures,attr"`
	Errors   int              `xml:"errors,attr"`
	Suites   []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Errors   int             `xml:"errors,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Failure   *junitFailure `xml:"failure,omitempty"`
	Error     *junitFailure `xml:"error,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitReporter writes JUnit XML output for CI systems.
type JUnitReporter struct {
	opts Options
}

// NewJUnitReporter creates a JUnit reporter.
func NewJUnitReporter(opts Options) *JUnitReporter {
	return &JUnitReporter{opts: opts}
}

// Report implements Reporter.
func (r *JUnitReporter) Report(_ context.Context, result *runner.Result) error {
	suites := junitTestSuites{Name: "mdlint"}

	if result != nil {
		for _, outcome := range result.Files {
			path := r.opts.displayPath(outcome.Path)
			suite := junitTestSuite{Name: path}

			switch {
			case outcome.Err != nil:
				suite.Tests = 1
				suite.Errors = 1
				suite.Cases = append(suite.Cases, junitTestCase{
					Name:      path,
					ClassName: path,
					Error: &junitFailure{
						Message: outcome.Err.Error(),
						Type:    "io",
					},
				})
			case outcome.Result == nil || len(outcome.Result.Result.Violations) == 0:
				// Passing files still appear as a single green case.
				suite.Tests = 1
				suite.Cases = append(suite.Cases, junitTestCase{
					Name:      path,
					ClassName: path,
				})
			default:
				for _, v := range outcome.Result.Result.Violations {
					suite.Tests++
					suite.Failures++
					suite.Cases = append(suite.Cases, junitTestCase{
						Name:      fmt.Sprintf("%s:%d %s", path, v.Line, v.Rule),
						ClassName: path,
						Failure: &junitFailure{
							Message: v.Message,
							Type:    v.Rule,
							Body:    fmt.Sprintf("%s:%d:%d %s %s", path, v.Line, v.Column, v.Rule, v.Message),
						},
					})
				}
			}

			suites.Tests += suite.Tests
			suites.Failures += suite.Failures
			suites.Errors += suite.Errors
			suites.Suites = append(suites.Suites, suite)
		}
	}

	if err := writeXML(r.opts.Writer, suites, !r.opts.Compact); err != nil {
		return fmt.Errorf("encode JUnit XML: %w", err)
	}
	return nil
}

func writeXML(w io.Writer, v any, indent bool) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	if indent {
		encoder.Indent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
