// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

// assemblyMemberStems lists every entry-keyword stem a Member Reference
// field may point at, across every Assem-family entry variant in the
// original schema (EDS_DATAREF lists were merged; duplicates collapse).
var assemblyMemberStems = []string{
	"AssemN", "ParamN", "ProxyAssemN", "ProxyParamN", "AssemExaN",
	"VariantN", "BitStringVariantN", "VariantExaN", "ArrayN", "ConstructedParamN",
}

func newAssemEntry(key string, memberStems []string) EntrySchema {
	return EntrySchema{
		Name: "Assem", Key: key, Mandatory: false,
		EnumGroups: []EnumGroup{{FirstField: 7, Count: 2}},
		Fields: []FieldSchema{
			{Name: "Name", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}},
			{Name: "Path", Mandatory: false, Alts: []FieldAlt{{Variant: VEPath}, {Variant: VKeyword, Meta: TypeMeta{Keywords: []string{"SYMBOL_ANSI"}}}}},
			{Name: "Size", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}, {Variant: VRef, Meta: TypeMeta{Stems: []string{"ParamN"}}}}},
			{Name: "Descriptor", Mandatory: false, Alts: []FieldAlt{{Variant: VWord}}},
			{Name: "Reserved", Mandatory: false, Alts: []FieldAlt{{Variant: VEmpty}}},
			{Name: "Reserved", Mandatory: false, Alts: []FieldAlt{{Variant: VEmpty}}},
			{Name: "Member Size", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}}},
			{Name: "Member Reference", Mandatory: false, Alts: []FieldAlt{
				{Variant: VUdint}, {Variant: VEPath},
				{Variant: VRef, Meta: TypeMeta{Stems: memberStems}},
				{Variant: VEmpty},
			}},
		},
	}
}

func newAssemblySection() SectionSchema {
	return SectionSchema{
		Name: "Assembly", Key: "Assembly", ClassID: 0x04, Mandatory: false,
		Entries: []EntrySchema{
			newAssemEntry("AssemN", []string{"AssemN", "ParamN", "ProxyAssemN", "ProxyParamN"}),
			newAssemEntry("ProxyAssemN", []string{"AssemN", "ParamN"}),
			newAssemEntry("ProxiedAssemN", []string{"AssemN", "ParamN"}),
			newAssemEntry("AssemExaN", assemblyMemberStems),
			newAssemEntry("ProxyAssemExaN", assemblyMemberStems),
			newAssemEntry("ProxiedAssemExaN", assemblyMemberStems),
			{
				Name: "Array", Key: "ArrayN", Mandatory: false,
				Fields: []FieldSchema{
					{Name: "Name", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}},
					{Name: "Path", Mandatory: false, Alts: []FieldAlt{{Variant: VEPath}, {Variant: VKeyword, Meta: TypeMeta{Keywords: []string{"SYMBOL_ANSI"}}}}},
					{Name: "Descriptor", Mandatory: false, Alts: []FieldAlt{{Variant: VWord}}},
					{Name: "Help String", Mandatory: false, Alts: []FieldAlt{{Variant: VString}}},
					{Name: "Reserved", Mandatory: false, Alts: []FieldAlt{{Variant: VEmpty}}},
					{Name: "Reserved", Mandatory: false, Alts: []FieldAlt{{Variant: VEmpty}}},
					{Name: "Reserved", Mandatory: false, Alts: []FieldAlt{{Variant: VEmpty}}},
					{Name: "Array Element Size", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}}},
					{Name: "Array Element Type", Mandatory: true, Alts: []FieldAlt{{Variant: VRef, Meta: TypeMeta{Stems: assemblyMemberStems}}, {Variant: VEmpty}}},
					{Name: "Number of Dimensions", Mandatory: true, Alts: []FieldAlt{{Variant: VUsint}}},
					{Name: "Number of Dimension Elements", Mandatory: true, Alts: []FieldAlt{{Variant: VUdint}}},
				},
			},
		},
	}
}

func newConnectionManagerSection() SectionSchema {
	formatStems := []string{"ParamN", "AssemN", "AssemExaN", "ArrayN", "ConstructedParamN"}
	return SectionSchema{
		Name: "Connection Manager", Key: "Connection Manager", ClassID: 0x06, Mandatory: true,
		Entries: []EntrySchema{
			{
				Name: "Connection", Key: "ConnectionN", Mandatory: false,
				Fields: []FieldSchema{
					{Name: "Trigger and transport", Mandatory: false, Alts: []FieldAlt{{Variant: VDword}}},
					{Name: "Connection parameters", Mandatory: false, Alts: []FieldAlt{{Variant: VDword}}},
					{Name: "O2T RPI", Mandatory: false, Alts: []FieldAlt{{Variant: VUdint}, {Variant: VRef, Meta: TypeMeta{Stems: []string{"ParamN"}}}}},
					{Name: "O2T size", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}, {Variant: VRef, Meta: TypeMeta{Stems: []string{"ParamN"}}}}},
					{Name: "O2T format", Mandatory: false, Alts: []FieldAlt{{Variant: VRef, Meta: TypeMeta{Stems: formatStems}}}},
					{Name: "T2O RPI", Mandatory: false, Alts: []FieldAlt{{Variant: VUdint}, {Variant: VRef, Meta: TypeMeta{Stems: []string{"ParamN"}}}}},
					{Name: "T2O size", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}, {Variant: VRef, Meta: TypeMeta{Stems: []string{"ParamN"}}}}},
					{Name: "T2O format", Mandatory: false, Alts: []FieldAlt{{Variant: VRef, Meta: TypeMeta{Stems: formatStems}}}},
					{Name: "Proxy Config size", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}, {Variant: VRef, Meta: TypeMeta{Stems: []string{"ParamN"}}}}},
					{Name: "Proxy Config format", Mandatory: false, Alts: []FieldAlt{{Variant: VRef, Meta: TypeMeta{Stems: formatStems}}}},
					{Name: "Target Config size", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}, {Variant: VRef, Meta: TypeMeta{Stems: []string{"ParamN"}}}}},
					{Name: "Target Config format", Mandatory: false, Alts: []FieldAlt{{Variant: VRef, Meta: TypeMeta{Stems: formatStems}}}},
					{Name: "Connection name string", Mandatory: false, Alts: []FieldAlt{{Variant: VString}}},
				},
			},
		},
	}
}

// newTCPIPInterfaceSection grounds the CIP TCP/IP Interface Object
// (class 0xF5), so every EtherNetIP device schema covers the class that actually carries its network configuration
// attributes, not only the I/O-facing Assembly/Connection Manager pair.
func newTCPIPInterfaceSection() SectionSchema {
	return SectionSchema{
		Name: "TCP/IP Interface Class", Key: "TCP/IP Interface Class", ClassID: 0xF5, Mandatory: false,
		Entries: []EntrySchema{
			metaScalarEntry("Revision", "Revision", VUint),
		},
	}
}

func newEtherNetIPLibrary() ProtocolLibrary {
	return ProtocolLibrary{
		Name: "EtherNetIP",
		Sections: []SectionSchema{
			{Name: "Identity Class", Key: "Identity Class", ClassID: 0x01, Mandatory: false},
			{Name: "Message Router Class", Key: "Message Router Class", ClassID: 0x02, Mandatory: false},
			{Name: "DeviceNet Class", Key: "DeviceNet Class", ClassID: 0x03, Mandatory: false},
			newAssemblySection(),
			{Name: "Connection Class", Key: "Connection Class", ClassID: 0x05, Mandatory: false},
			newConnectionManagerSection(),
			newTCPIPInterfaceSection(),
		},
	}
}

// newDeviceNetLibrary grounds the minimal DeviceNet-specific schema: the
// Device Classification keyword "DeviceNet" selects this library, whose
// only device-specific addition over the meta sections is its own
// DeviceNet Class (0x03) section carrying MAC ID/baud rate entries.
func newDeviceNetLibrary() ProtocolLibrary {
	return ProtocolLibrary{
		Name: "DeviceNet",
		Sections: []SectionSchema{
			{
				Name: "DeviceNet Class", Key: "DeviceNet Class", ClassID: 0x03, Mandatory: false,
				Entries: []EntrySchema{
					metaScalarEntry("MAC ID", "MACID", VUsint),
					{
						Name: "Baud Rate", Key: "BaudRate", Mandatory: false,
						Fields: []FieldSchema{{Name: "Baud Rate", Mandatory: true, Alts: []FieldAlt{{Variant: VKeyword, Meta: TypeMeta{Keywords: []string{"125Kbps", "250Kbps", "500Kbps"}}}}}},
					},
				},
			},
		},
	}
}

func newDefaultDatabase() *Database {
	return &Database{
		Meta: newMetaSections(),
		Protocols: []ProtocolLibrary{
			newEtherNetIPLibrary(),
			newDeviceNetLibrary(),
		},
	}
}
