// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

// deviceClassificationKeywords enumerates the public Device Classification
// values; the EtherNetIP_* family all fold to the same protocol library.
var deviceClassificationKeywords = []string{
	"CompoNet", "ControlNet", "DeviceNet",
	"EtherNetIP", "EtherNetIP_In_Cabinet", "EtherNetIP_UDP_Only",
	"ModbusSL", "ModbusTCP", "Safety", "HART", "IOLink",
}

func newMetaSections() []SectionSchema {
	return []SectionSchema{
		{
			Name: "File Description", Key: "File", ClassID: -1, Mandatory: true,
			Entries: []EntrySchema{
				{Name: "File Description Text", Key: "DescText", Mandatory: true, Fields: []FieldSchema{
					{Name: "File Description Text", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}},
				}},
				{Name: "File Creation Date", Key: "CreateDate", Mandatory: true, Fields: []FieldSchema{
					{Name: "File Creation Date", Mandatory: true, Alts: []FieldAlt{{Variant: VDate}}},
				}},
				{Name: "File Creation Time", Key: "CreateTime", Mandatory: true, Fields: []FieldSchema{
					{Name: "File Creation Time", Mandatory: true, Alts: []FieldAlt{{Variant: VTime}}},
				}},
				{Name: "Last Modification Date", Key: "ModDate", Mandatory: false, Fields: []FieldSchema{
					{Name: "Last Modification Date", Mandatory: true, Alts: []FieldAlt{{Variant: VDate}}},
				}},
				{Name: "Last Modification Time", Key: "ModTime", Mandatory: false, Fields: []FieldSchema{
					{Name: "Last Modification Time", Mandatory: true, Alts: []FieldAlt{{Variant: VTime}}},
				}},
				{Name: "EDS Revision", Key: "Revision", Mandatory: true, Fields: []FieldSchema{
					{Name: "EDS Revision", Mandatory: true, Alts: []FieldAlt{{Variant: VRevision}}},
				}},
				{Name: "Home URL", Key: "HomeURL", Mandatory: false, Fields: []FieldSchema{
					{Name: "Home URL", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}},
				}},
				{Name: "Exclude", Key: "Exclude", Mandatory: false, Fields: []FieldSchema{
					{Name: "Exclude", Mandatory: true, Alts: []FieldAlt{{Variant: VKeyword, Meta: TypeMeta{Keywords: []string{"NONE", "WRITE", "READ_WRITE"}}}}},
				}},
				{Name: "EDS File CRC", Key: "EDSFileCRC", Mandatory: false, Fields: []FieldSchema{
					{Name: "EDS File CRC", Mandatory: true, Alts: []FieldAlt{{Variant: VUdint}}},
				}},
			},
		},
		{
			Name: "Device Description", Key: "Device", ClassID: -1, Mandatory: true,
			Entries: []EntrySchema{
				{Name: "Vendor ID", Key: "VendCode", Mandatory: true, Fields: []FieldSchema{{Name: "Vendor ID", Mandatory: true, Alts: []FieldAlt{{Variant: VUint}}}}},
				{Name: "Vendor Name", Key: "VendName", Mandatory: true, Fields: []FieldSchema{{Name: "Vendor Name", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}}}},
				{Name: "Device Type", Key: "ProdType", Mandatory: true, Fields: []FieldSchema{{Name: "Device Type", Mandatory: true, Alts: []FieldAlt{{Variant: VUint}}}}},
				{Name: "Device Type String", Key: "ProdTypeStr", Mandatory: true, Fields: []FieldSchema{{Name: "Device Type String", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}}}},
				{Name: "Product Code", Key: "ProdCode", Mandatory: true, Fields: []FieldSchema{{Name: "Product Code", Mandatory: true, Alts: []FieldAlt{{Variant: VUdint}}}}},
				{Name: "Major Revision", Key: "MajRev", Mandatory: true, Fields: []FieldSchema{{Name: "Major Revision", Mandatory: true, Alts: []FieldAlt{{Variant: VUsint}}}}},
				{Name: "Minor Revision", Key: "MinRev", Mandatory: true, Fields: []FieldSchema{{Name: "Minor Revision", Mandatory: true, Alts: []FieldAlt{{Variant: VUsint}}}}},
				{Name: "Product Name", Key: "ProdName", Mandatory: true, Fields: []FieldSchema{{Name: "Product Name", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}}}},
				{Name: "Catalog Number", Key: "Catalog", Mandatory: false, Fields: []FieldSchema{{Name: "Catalog Number", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}}}},
				{Name: "Icon File Name", Key: "Icon", Mandatory: true, Fields: []FieldSchema{{Name: "Icon File Name", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}}}},
				{Name: "Icon Contents", Key: "IconContents", Mandatory: false, Fields: []FieldSchema{{Name: "Icon Contents", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}}}},
			},
		},
		{
			Name: "Device Classification", Key: "Device Classification", ClassID: -1, Mandatory: true,
			Entries: []EntrySchema{
				{Name: "Classification 1", Key: "Class1", Mandatory: true, Fields: []FieldSchema{
					{Name: "Class1", Mandatory: true, Alts: []FieldAlt{{Variant: VKeyword, Meta: TypeMeta{Keywords: deviceClassificationKeywords}}}},
				}},
				{Name: "Classification N", Key: "ClassN", Mandatory: false, Fields: []FieldSchema{
					{Name: "ClassN", Mandatory: true, Alts: []FieldAlt{{Variant: VKeyword, Meta: TypeMeta{Keywords: deviceClassificationKeywords}}}},
				}},
			},
		},
		{
			Name: "Parameters", Key: "Params", ClassID: -1, Mandatory: false,
			Entries: []EntrySchema{
				{
					Name: "Parameter", Key: "ParamN", Mandatory: false,
					Fields: []FieldSchema{
						{Name: "Reserved", Mandatory: true, Alts: []FieldAlt{{Variant: VUsint}}},
						{Name: "Link Path Size", Mandatory: false, Alts: []FieldAlt{{Variant: VUsint}, {Variant: VEmpty}}},
						{Name: "Link Path", Mandatory: false, Alts: []FieldAlt{{Variant: VEPath}, {Variant: VKeyword, Meta: TypeMeta{Keywords: []string{"SYMBOL_ANSI"}}}, {Variant: VEmpty}}},
						{Name: "Descriptor", Mandatory: true, Alts: []FieldAlt{{Variant: VWord}}},
						{Name: "Data Type", Mandatory: true, Alts: []FieldAlt{{Variant: VUsint}}},
						{Name: "Data Size", Mandatory: true, Alts: []FieldAlt{{Variant: VUsint}, {Variant: VEmpty}}},
						{Name: "Parameter Name", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}},
						{Name: "Units String", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}},
						{Name: "Help String", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}},
						{Name: "Minimum Value", Mandatory: false, Alts: []FieldAlt{{Variant: VTypeRef, Meta: TypeMeta{TypeRefField: "Data Type"}}, {Variant: VEmpty}}},
						{Name: "Maximum Value", Mandatory: false, Alts: []FieldAlt{{Variant: VTypeRef, Meta: TypeMeta{TypeRefField: "Data Type"}}, {Variant: VEmpty}}},
						{Name: "Default Value", Mandatory: true, Alts: []FieldAlt{{Variant: VTypeRef, Meta: TypeMeta{TypeRefField: "Data Type"}}, {Variant: VEmpty}}},
						{Name: "Scaling Multiplier", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}}},
						{Name: "Scaling Divider", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}}},
						{Name: "Scaling Base", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}}},
						{Name: "Scaling Offset", Mandatory: false, Alts: []FieldAlt{{Variant: VDint}}},
						{Name: "Multiplier Link", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}}},
						{Name: "Divisor Link", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}}},
						{Name: "Base Link", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}}},
						{Name: "Offset Link", Mandatory: false, Alts: []FieldAlt{{Variant: VUint}}},
						{Name: "Decimal Precision", Mandatory: false, Alts: []FieldAlt{{Variant: VUsint}}},
						{Name: "International Parameter Name", Mandatory: false, Alts: []FieldAlt{{Variant: VStringI}}},
						{Name: "International Engineering Units", Mandatory: false, Alts: []FieldAlt{{Variant: VStringI}}},
						{Name: "International Help String", Mandatory: false, Alts: []FieldAlt{{Variant: VStringI}}},
					},
				},
				{
					Name: "Enumeration", Key: "EnumN", Mandatory: false,
					EnumGroups: []EnumGroup{{FirstField: 3, Count: 2}},
					Fields: []FieldSchema{
						{Name: "First Enum", Mandatory: false, Alts: []FieldAlt{{Variant: VUsint}, {Variant: VRef, Meta: TypeMeta{Stems: []string{"ParamN"}}}}},
						{Name: "First Enum String", Mandatory: false, Alts: []FieldAlt{{Variant: VString}}},
						{Name: "Nth Enum", Mandatory: false, Alts: []FieldAlt{{Variant: VUsint}, {Variant: VRef, Meta: TypeMeta{Stems: []string{"ParamN"}}}}},
						{Name: "Nth Enum String", Mandatory: false, Alts: []FieldAlt{{Variant: VString}}},
					},
				},
			},
		},
		{
			Name: "Capacity", Key: "Capacity", ClassID: -1, Mandatory: true,
			Entries: []EntrySchema{
				{
					Name: "Traffic Spec", Key: "TSpecN", Mandatory: false,
					Fields: []FieldSchema{
						{Name: "TxRx", Mandatory: true, Alts: []FieldAlt{{Variant: VKeyword, Meta: TypeMeta{Keywords: []string{"Tx", "Rx", "TxRx"}}}}},
						{Name: "ConnSize", Mandatory: true, Alts: []FieldAlt{{Variant: VUint}}},
						{Name: "PacketsPerSecond", Mandatory: true, Alts: []FieldAlt{{Variant: VUdint}}},
					},
				},
				metaScalarEntry("Connection overhead", "ConnOverhead", VReal),
				metaScalarEntry("Maximum CIP connections", "MaxCIPConnections", VUint),
				metaScalarEntry("Maximum I/O connections", "MaxIOConnections", VUint),
				metaScalarEntry("Maximum explicit connections", "MaxMsgConnections", VUint),
				metaScalarEntry("Maximum I/O producers", "MaxIOProducers", VUint),
				metaScalarEntry("Maximum I/O consumers", "MaxIOConsumers", VUint),
				metaScalarEntry("Maximum I/O producers plus consumers", "MaxIOProduceConsume", VUint),
				metaScalarEntry("Maximum I/O multicast producers", "MaxIOMcastProducers", VUint),
				metaScalarEntry("Maximum I/O multicast consumers", "MaxIOMcastConsumers", VUint),
				metaScalarEntry("Maximum consumers per multicast connection", "MaxConsumersPerMcast", VUint),
			},
		},
		newCommonObjectClassSection(),
	}
}

// metaScalarEntry is a shorthand for the many Capacity/CommonObjectClass
// entries that carry exactly one mandatory scalar field of the same name.
func metaScalarEntry(name, key string, variant Variant) EntrySchema {
	return EntrySchema{
		Name: name, Key: key, Mandatory: false,
		Fields: []FieldSchema{{Name: name, Mandatory: true, Alts: []FieldAlt{{Variant: variant}}}},
	}
}

// newCommonObjectClassSection builds the fallback entry set every
// protocol-scoped class section (Assembly, Connection Manager, ...) may
// borrow from when its own schema doesn't recognize an entry keyword.
func newCommonObjectClassSection() SectionSchema {
	return SectionSchema{
		Name: "Common Object Class", Key: "CommonObjectClass", ClassID: -1, Mandatory: false,
		Entries: []EntrySchema{
			metaScalarEntry("Revision", "Revision", VUint),
			metaScalarEntry("Maximum Instance Number", "MaxInst", VUint),
			metaScalarEntry("Number of Static Instances", "Number_Of_Static_Instances", VUint),
			metaScalarEntry("Maximum Number of Dynamic Instances", "Max_Number_Of_Dynamic_Instances", VUint),
			metaScalarEntry("Class attribute identification", "Class_Attributes", VUint),
			metaScalarEntry("Instance attribute identification", "Instance_Attributes", VUint),
			{Name: "Class service support", Key: "Class_Services", Mandatory: false, Fields: []FieldSchema{{Name: "Service", Mandatory: true, Alts: []FieldAlt{{Variant: VService}}}}},
			{Name: "Instance service support", Key: "Instance_Services", Mandatory: false, Fields: []FieldSchema{{Name: "Service", Mandatory: true, Alts: []FieldAlt{{Variant: VService}}}}},
			metaScalarEntry("Object Name", "Object_Name", VString),
			metaScalarEntry("Object Class Code", "Object_Class_Code", VUdint),
			{
				Name: "Service Description", Key: "Service_DescriptionN", Mandatory: false,
				Fields: []FieldSchema{
					{Name: "Service Code", Mandatory: true, Alts: []FieldAlt{{Variant: VUsint}}},
					{Name: "Name", Mandatory: true, Alts: []FieldAlt{{Variant: VString}}},
					{Name: "Service Application Path", Mandatory: true, Alts: []FieldAlt{{Variant: VEPath}, {Variant: VKeyword, Meta: TypeMeta{Keywords: []string{"SYMBOL_ANSI"}}}}},
					{Name: "Service Request Data", Mandatory: true, Alts: []FieldAlt{{Variant: VRef, Meta: TypeMeta{Stems: []string{"AssemExaN", "ParamN", "ConstructedParamN"}}}, {Variant: VEmpty}}},
					{Name: "Service Response Data", Mandatory: true, Alts: []FieldAlt{{Variant: VRef, Meta: TypeMeta{Stems: []string{"AssemExaN", "ParamN", "ConstructedParamN"}}}, {Variant: VEmpty}}},
				},
			},
		},
	}
}
