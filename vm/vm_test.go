package vm

import (
	"bytes"
	"strings"
	"testing"

	"nilox/compiler"
)

func run(t *testing.T, source string) (string, error) {
	t.Helper()
	c, compileErr := compiler.Compile(source)
	if compileErr != nil {
		t.Fatalf("unexpected compile error: %v", compileErr)
	}
	var out bytes.Buffer
	machine := New(&out, nil)
	err := machine.Run(c)
	return out.String(), err
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, "print 1 + 2 * 3;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Errorf("output = %q, want %q", out, "7\n")
	}
}

func TestGroupingOverridesPrecedence(t *testing.T) {
	out, err := run(t, "print (1 + 2) * 3;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "9\n" {
		t.Errorf("output = %q, want %q", out, "9\n")
	}
}

func TestEqualityAndNot(t *testing.T) {
	out, err := run(t, "print !nil == true;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Errorf("output = %q, want %q", out, "true\n")
	}
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "foobar\n" {
		t.Errorf("output = %q, want %q", out, "foobar\n")
	}
}

func TestStringPlusNumberCoercesTheNumber(t *testing.T) {
	out, err := run(t, `print "count: " + 3;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "count: 3\n" {
		t.Errorf("output = %q, want %q", out, "count: 3\n")
	}
}

func TestStringPlusBooleanIsRuntimeError(t *testing.T) {
	_, err := run(t, `print "x" + true;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	want := "Operands must be two numbers or two strings.\n[line 1] in script."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestStringPlusNilIsRuntimeError(t *testing.T) {
	_, err := run(t, `print "x" + nil;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	want := "Operands must be two numbers or two strings.\n[line 1] in script."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestComparisonOnNonNumberIsRuntimeError(t *testing.T) {
	_, err := run(t, `print true < 1;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	want := "Operands must be number or string.\n[line 1] in script."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestNegateNonNumberIsRuntimeError(t *testing.T) {
	_, err := run(t, "print -true;")
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	want := "Operand must be a number.\n[line 1] in script."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestDivideByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, "print 1 / 0;")
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	want := "Can't divide by zero.\n[line 1] in script."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestGlobalVariableRoundTrip(t *testing.T) {
	out, err := run(t, `var greeting = "hi"; print greeting;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi\n" {
		t.Errorf("output = %q, want %q", out, "hi\n")
	}
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, "print missing;")
	if err == nil || !strings.Contains(err.Error(), "Undefined variable 'missing'.") {
		t.Errorf("error = %v, want it to mention the undefined variable", err)
	}
}

func TestGlobalsPersistAcrossRuns(t *testing.T) {
	c1, err := compiler.Compile("var x = 1;")
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	var out bytes.Buffer
	machine := New(&out, nil)
	if err := machine.Run(c1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c2, err := compiler.Compile("print x;")
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if err := machine.Run(c2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q, want %q", out.String(), "1\n")
	}
}
