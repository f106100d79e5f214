//go:build unit
// +build unit

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectParamName(t *testing.T) {
	assert.Equal(t, "id", DetectParamName("export default function TaskPage() {}"))
	assert.Equal(t, "trackingNumber", DetectParamName("// page for [trackingNumber]"))
	assert.Equal(t, "trackingNumber", DetectParamName("const { trackingNumber } = params;"))
}

func TestMigrateRouteParamsPropPattern(t *testing.T) {
	input := `"use client";

import { useState } from "react";

export default function TaskPage({ params }: { params: { id: string } }) {
  const task = useTask(params.id);
  return <div>{task.name}</div>;
}
`

	got, changed := MigrateRouteParams(input)
	require.True(t, changed)

	assert.Contains(t, got, "params: Promise<{ id: string }>")
	assert.Contains(t, got, "const { id } = use(params);")
	assert.NotContains(t, got, "params.id")
	// use is added to the existing react import
	assert.Contains(t, got, "use,")
}

func TestMigrateRouteParamsUseParamsHook(t *testing.T) {
	input := `"use client";

import { useParams } from "next/navigation";

export default function OrderPage() {
  const params = useParams();
  const orderId = params.orderId as string;
  return <div>{orderId}</div>;
}
`

	got, changed := MigrateRouteParams(input)
	require.True(t, changed)

	assert.Contains(t, got, "interface PageProps")
	assert.Contains(t, got, "params: Promise<{ id: string }>")
	assert.Contains(t, got, "({ params }: PageProps)")
	assert.Contains(t, got, "const { id } = use(params);")
	assert.NotContains(t, got, "useParams")
	assert.Contains(t, got, "<div>{id}</div>")
}

func TestMigrateRouteParamsTrackingNumber(t *testing.T) {
	input := `export default function TrackingPage({ params }: { params: { trackingNumber: string } }) {
  return <div>{params.trackingNumber}</div>;
}
`

	got, changed := MigrateRouteParams(input)
	require.True(t, changed)

	assert.Contains(t, got, "params: Promise<{ trackingNumber: string }>")
	assert.Contains(t, got, "const { trackingNumber } = use(params);")
	assert.NotContains(t, got, "params.trackingNumber")
}

func TestMigrateRouteParamsAlreadyMigrated(t *testing.T) {
	input := `export default function TaskPage({ params }: PageProps) {
  const { id } = use(params);
  return <div>{id}</div>;
}
`

	got, changed := MigrateRouteParams(input)
	assert.False(t, changed)
	assert.Equal(t, input, got)
}

func TestMigrateRouteParamsUnrecognizedShape(t *testing.T) {
	input := `export default function AboutPage() {
  return <div>static page</div>;
}
`

	got, changed := MigrateRouteParams(input)
	assert.False(t, changed)
	assert.Equal(t, input, got)
}
