/*

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	v1 "github.com/component-sync/engine/api/v1"
	"github.com/component-sync/engine/internal/reconcilers"
)

var (
	assetTypeFlag   string
	libraryIDFlag   string
	pageIDFlag      string
	componentIDFlag string
	shapeIDFlag     string
	resetFlag       bool
)

func parseAssetType() (v1.AssetType, error) {
	switch assetTypeFlag {
	case "colors":
		return v1.AssetColors, nil
	case "typographies":
		return v1.AssetTypographies, nil
	case "components":
		return v1.AssetComponents, nil
	default:
		return "", fmt.Errorf("unknown --asset-type %q (want colors, typographies, or components)", assetTypeFlag)
	}
}

func newSyncFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-file",
		Short: "Propagate a library asset into every page of the workspace file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSnapshotFlag(); err != nil {
				return err
			}
			snap, err := loadSnapshot(snapshotPath)
			if err != nil {
				return err
			}
			assetType, err := parseAssetType()
			if err != nil {
				return err
			}
			return printChangePair(reconcilers.GenerateSyncFile(snap, assetType, libraryIDFlag, log))
		},
	}
	addAssetFlags(cmd)
	return cmd
}

func newSyncLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-library",
		Short: "Propagate a library asset into every component of the local library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSnapshotFlag(); err != nil {
				return err
			}
			snap, err := loadSnapshot(snapshotPath)
			if err != nil {
				return err
			}
			assetType, err := parseAssetType()
			if err != nil {
				return err
			}
			return printChangePair(reconcilers.GenerateSyncLibrary(snap, assetType, libraryIDFlag, log))
		},
	}
	addAssetFlags(cmd)
	return cmd
}

func newSyncInstanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-instance",
		Short: "Reconcile one component instance against its master",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSnapshotFlag(); err != nil {
				return err
			}
			snap, err := loadSnapshot(snapshotPath)
			if err != nil {
				return err
			}
			return printChangePair(reconcilers.SyncShapeAndChildren(snap, pageIDFlag, componentIDFlag, shapeIDFlag, resetFlag, log))
		},
	}
	addContainerFlags(cmd)
	cmd.Flags().BoolVar(&resetFlag, "reset", false, "Reset touched flags instead of honoring them")
	return cmd
}

func newSyncInverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-inverse",
		Short: "Copy a locally-edited instance shape back onto its master",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSnapshotFlag(); err != nil {
				return err
			}
			snap, err := loadSnapshot(snapshotPath)
			if err != nil {
				return err
			}
			return printChangePair(reconcilers.SyncShapeInverse(snap, pageIDFlag, shapeIDFlag, log))
		},
	}
	cmd.Flags().StringVar(&pageIDFlag, "page-id", "", "Page id the shape lives on")
	cmd.Flags().StringVar(&shapeIDFlag, "shape-id", "", "Shape id to inverse-sync")
	return cmd
}

func addAssetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&assetTypeFlag, "asset-type", "", "colors, typographies, or components (required)")
	cmd.Flags().StringVar(&libraryIDFlag, "library-id", "", "Library file id ('' for the local library)")
}

func addContainerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pageIDFlag, "page-id", "", "Page id (mutually exclusive with --component-id)")
	cmd.Flags().StringVar(&componentIDFlag, "component-id", "", "Component id (mutually exclusive with --page-id)")
	cmd.Flags().StringVar(&shapeIDFlag, "shape-id", "", "Instance root shape id to reconcile")
}
